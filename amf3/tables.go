package amf3

// traits describes one object class seen in the stream: its name, whether
// instances may carry dynamic fields, and the declared member names in
// declaration order. Traits live only as long as the decode pass that
// created them.
type traits struct {
	className string
	dynamic   bool
	members   []string
}

// refTables are the per-decode reference tables. Indices are assigned in
// strict encounter order starting at 0 and never removed within a pass;
// every top-level Decode call starts with fresh tables. The empty string is
// never interned.
type refTables struct {
	strings    []string
	traits     []*traits
	objects    []Value
	byteArrays [][]byte
}
