package bencode

// Kind discriminates the Object union.
type Kind uint8

const (
	KindString Kind = iota
	KindInteger
	KindList
	KindDict
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "string"
	case KindInteger:
		return "integer"
	case KindList:
		return "list"
	case KindDict:
		return "dict"
	default:
		return "unknown"
	}
}

// Object is one decoded bencode value. Exactly one payload field is
// meaningful, selected by Kind. Treat decoded Objects as immutable.
type Object struct {
	Kind Kind
	Str  []byte
	Int  int64
	List []Object
	Dict []Pair
}

// Pair is one dict entry in wire order. Keys are raw bytes; the protocol
// layer decides whether they must be UTF-8 or unique.
type Pair struct {
	Key   []byte
	Value Object
}

func String(b []byte) Object { return Object{Kind: KindString, Str: b} }

func Text(s string) Object { return Object{Kind: KindString, Str: []byte(s)} }

func Integer(n int64) Object { return Object{Kind: KindInteger, Int: n} }

func List(items ...Object) Object { return Object{Kind: KindList, List: items} }

func Dict(pairs ...Pair) Object { return Object{Kind: KindDict, Dict: pairs} }
