// Package template defines the rendering seam between report renderers and
// the underlying template engine. The default pongo2-backed implementation
// lives in the gotemplate subpackage; renderers depend only on the
// TemplateRenderer interface so alternate engines can be injected.
package template
