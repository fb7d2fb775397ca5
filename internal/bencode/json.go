package bencode

// Generic projects obj into plain Go values suitable for JSON display or
// generic decoding: byte strings become string (best effort for non-UTF-8
// payloads), integers int64, lists []any, dicts map[string]any. Duplicate
// dict keys collapse last-wins, so this is a diagnostic view, not a
// substitute for protocol validation.
func Generic(obj Object) any {
	switch obj.Kind {
	case KindString:
		return string(obj.Str)
	case KindInteger:
		return obj.Int
	case KindList:
		items := make([]any, 0, len(obj.List))
		for _, item := range obj.List {
			items = append(items, Generic(item))
		}
		return items
	case KindDict:
		m := make(map[string]any, len(obj.Dict))
		for _, pair := range obj.Dict {
			m[string(pair.Key)] = Generic(pair.Value)
		}
		return m
	default:
		return nil
	}
}
