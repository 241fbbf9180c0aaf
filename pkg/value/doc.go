// Package value models the plain data that flows through generated forms:
// defaults authored on schemas, fallbacks produced for missing fields, and
// the live values users edit. A Value is a closed variant (undefined, null,
// bool, number, string, sequence, record) so equality and cloning are defined
// on the shape of the data rather than on Go reflection. Records keep
// insertion order, which matters when values are echoed back as JSON or YAML.
//
// Equal implements the structural comparison renderers use for dirty-state
// detection; Clone produces independent copies of authored defaults.
package value
