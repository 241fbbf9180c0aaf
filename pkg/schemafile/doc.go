// Package schemafile reads schema trees from YAML or JSON documents. A node
// is a mapping with a `type` tag plus the keys its kind needs:
//
//	type: object
//	description: Account
//	fields:
//	  name: string
//	  role:
//	    type: union
//	    list:
//	      - { type: const, value: admin }
//	      - { type: const, value: member }
//	  tags: { type: array, inner: string }
//
// A bare kind name is shorthand for a mapping holding only `type`. Field
// order in `fields` is preserved. Both formats are decoded into an ordered
// intermediate representation first, so JSON objects keep their key order
// too.
package schemafile
