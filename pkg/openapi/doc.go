// Package openapi adapts OpenAPI component schemas, as parsed by
// kin-openapi, into schema trees the form helpers understand. Titles and
// descriptions are stripped of markup so that markup-only text does not
// count as a title, and object properties are ordered by the x-order
// extension because OpenAPI property maps are unordered.
package openapi
