// Package htmltext normalizes HTML-escaped text in API payloads.
package htmltext

import (
	"html"
	"log/slog"
	"reflect"
)

// UnescapeString replaces HTML entities in s with their literal characters.
func UnescapeString(s string) string {
	return html.UnescapeString(s)
}

// UnescapeStrings returns a copy of ss with every element unescaped.
func UnescapeStrings(ss []string) []string {
	if ss == nil {
		return nil
	}
	return Unescape(ss).([]string)
}

// Unescape walks v and replaces HTML entities in every string it finds,
// including map keys. Containers come back as the same concrete type with
// the original untouched. Values of any other kind are returned unchanged
// with a warning, so an unexpected payload shape degrades instead of
// failing the fetch cycle.
func Unescape(v any) any {
	if v == nil {
		return nil
	}
	switch t := v.(type) {
	case string:
		return html.UnescapeString(t)
	case []string:
		out := make([]string, len(t))
		for i, s := range t {
			out[i] = html.UnescapeString(s)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[html.UnescapeString(k)] = Unescape(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, el := range t {
			out[i] = Unescape(el)
		}
		return out
	}
	return unescapeReflect(v)
}

// unescapeReflect handles container types outside the common JSON shapes,
// preserving the concrete slice or map type.
func unescapeReflect(v any) any {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		out := reflect.New(rv.Type()).Elem()
		out.SetString(html.UnescapeString(rv.String()))
		return out.Interface()

	case reflect.Slice:
		out := reflect.MakeSlice(rv.Type(), rv.Len(), rv.Len())
		for i := 0; i < rv.Len(); i++ {
			el := rv.Index(i)
			out.Index(i).Set(unescapeValue(el))
		}
		return out.Interface()

	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			break
		}
		out := reflect.MakeMapWithSize(rv.Type(), rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := reflect.New(rv.Type().Key()).Elem()
			key.SetString(html.UnescapeString(iter.Key().String()))
			out.SetMapIndex(key, unescapeValue(iter.Value()))
		}
		return out.Interface()
	}

	slog.Warn("unescape: unsupported value", "type", reflect.TypeOf(v).String())
	return v
}

// unescapeValue recurses into el and returns a value assignable to el's
// static type, falling back to el itself when the shapes don't line up.
func unescapeValue(el reflect.Value) reflect.Value {
	res := reflect.ValueOf(Unescape(el.Interface()))
	if res.IsValid() && res.Type().AssignableTo(el.Type()) {
		return res
	}
	return el
}
