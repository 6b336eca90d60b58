package ir

type Node struct {
	Type   Type
	Fields []*Node
	Values []*Node

	String string
	Bool   bool
	Number string
	Int64  *int64
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

// FromNumber returns a number node holding the integer literal v verbatim.
// It is used for integers which do not fit in an int64.
func FromNumber(v string) *Node {
	return &Node{
		Type:   NumberType,
		Number: v,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key string
	Val *Node
}

// FromKeyVals builds an object from kvs. Repeated keys keep the position
// of their first occurrence and the value of their last.
func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{
		Type:   ObjectType,
		Fields: make([]*Node, 0, len(kvs)),
		Values: make([]*Node, 0, len(kvs)),
	}
	index := make(map[string]int, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		if j, ok := index[kv.Key]; ok {
			res.Values[j] = kv.Val
			continue
		}
		index[kv.Key] = len(res.Fields)
		res.Fields = append(res.Fields, FromString(kv.Key))
		res.Values = append(res.Values, kv.Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type:   ArrayType,
		Values: make([]*Node, len(ySlice)),
	}
	copy(res.Values, ySlice)
	return res
}

// Set sets field to val in the object y, replacing any existing value in
// place.
func (y *Node) Set(field string, val *Node) {
	for i, f := range y.Fields {
		if f.String == field {
			y.Values[i] = val
			return
		}
	}
	y.Fields = append(y.Fields, FromString(field))
	y.Values = append(y.Values, val)
}

func (y *Node) Keys() []string {
	res := make([]string, len(y.Fields))
	for i, f := range y.Fields {
		res[i] = f.String
	}
	return res
}

func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := range n {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}
