package jsonarray

import "github.com/valyala/fastjson"

// An Object is a decoded top-level element of the array.  Ownership
// transfers to the consumer on emission: the decoder keeps no reference
// to it.
type Object = map[string]any

var objectParserPool fastjson.ParserPool

// decodeObject decodes the raw text of a completed top-level object into
// Go values.  fastjson tolerates raw control characters inside string
// literals, which pretty-printed API dumps do contain, while still
// rejecting structural errors such as trailing commas.
func decodeObject(text string) (Object, error) {
	p := objectParserPool.Get()
	defer objectParserPool.Put(p)
	v, err := p.Parse(text)
	if err != nil {
		return nil, err
	}
	o, err := v.Object()
	if err != nil {
		return nil, err
	}
	obj := make(Object, o.Len())
	o.Visit(func(key []byte, item *fastjson.Value) {
		obj[string(key)] = goValue(item)
	})
	return obj, nil
}

// goValue converts a fastjson value into the corresponding Go value.
// The result holds no reference to the parser, so it survives parser
// reuse.
func goValue(v *fastjson.Value) any {
	switch v.Type() {
	case fastjson.TypeObject:
		o, _ := v.Object()
		m := make(map[string]any, o.Len())
		o.Visit(func(key []byte, item *fastjson.Value) {
			m[string(key)] = goValue(item)
		})
		return m
	case fastjson.TypeArray:
		items, _ := v.Array()
		values := make([]any, len(items))
		for i, item := range items {
			values[i] = goValue(item)
		}
		return values
	case fastjson.TypeString:
		b, _ := v.StringBytes()
		return string(b)
	case fastjson.TypeNumber:
		n, _ := v.Float64()
		return n
	case fastjson.TypeTrue:
		return true
	case fastjson.TypeFalse:
		return false
	default:
		return nil
	}
}
