package content

import (
	"fmt"
	"reflect"
	"sort"
	"time"
)

// From converts an arbitrary Go value into a Content tree.
//
// Scalars map onto the matching variant; slices and arrays become
// sequences; maps and structs become ordered maps. Go map iteration
// order is not deterministic, so map entries are sorted by key at
// conversion time. Struct fields keep declaration order; unexported
// fields are skipped. time.Time renders as an RFC 3339 string and
// time.Duration as its String form, matching how captured values are
// expected to appear in snapshots.
//
// A Content passed to From is returned unchanged, so callback return
// values may be either pre-built Content or plain Go values.
func From(v any) Content {
	if v == nil {
		return Nil()
	}
	if c, ok := v.(Content); ok {
		return c
	}
	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(v reflect.Value) Content {
	if !v.IsValid() {
		return Nil()
	}

	// Special-case time types before the kind switch; both are
	// convertible to plain kinds and would otherwise lose their
	// canonical string form.
	switch t := v.Interface().(type) {
	case time.Time:
		return String(t.Format(time.RFC3339))
	case time.Duration:
		return String(t.String())
	}

	switch v.Kind() {
	case reflect.Bool:
		return Bool(v.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Int(v.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Uint(v.Uint())
	case reflect.Float32, reflect.Float64:
		return Float(v.Float())
	case reflect.String:
		return String(v.String())
	case reflect.Ptr, reflect.Interface:
		if v.IsNil() {
			return Nil()
		}
		return fromReflect(v.Elem())
	case reflect.Slice, reflect.Array:
		if v.Kind() == reflect.Slice && v.IsNil() {
			return Nil()
		}
		items := make([]Content, v.Len())
		for i := 0; i < v.Len(); i++ {
			items[i] = fromReflect(v.Index(i))
		}
		return Seq(items...)
	case reflect.Map:
		if v.IsNil() {
			return Nil()
		}
		return fromMap(v)
	case reflect.Struct:
		return fromStruct(v)
	default:
		// Channels, funcs and other unrepresentable kinds degrade to
		// their fmt rendering rather than failing the capture.
		return String(fmt.Sprintf("%v", v.Interface()))
	}
}

// fromMap converts a Go map, sorting entries by key so that conversion
// is deterministic across runs.
func fromMap(v reflect.Value) Content {
	keys := v.MapKeys()
	type kv struct {
		key   Content
		value Content
	}
	entries := make([]kv, 0, len(keys))
	for _, k := range keys {
		entries = append(entries, kv{
			key:   fromReflect(k),
			value: fromReflect(v.MapIndex(k)),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].key.sortKey() < entries[j].key.sortKey()
	})

	m := make([]MapEntry, len(entries))
	for i, e := range entries {
		m[i] = MapEntry{Key: e.key, Value: e.value}
	}
	return Map(m...)
}

// fromStruct converts a struct to a map Content keyed by field name,
// preserving declaration order.
func fromStruct(v reflect.Value) Content {
	t := v.Type()
	entries := make([]MapEntry, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		entries = append(entries, MapEntry{
			Key:   String(field.Name),
			Value: fromReflect(v.Field(i)),
		})
	}
	return Map(entries...)
}
