package config

import (
	"reflect"
)

// layer is the partial [Settings] read from one source together with the
// keys that source supplied. Keys use the environment variable names
// ("DATABASE_URL", "JWT_SECRET", ...) whatever the source.
type layer struct {
	*Settings
	keys map[string]struct{}
}

func newLayer() *layer {
	return &layer{
		Settings: &Settings{},
		keys:     make(map[string]struct{}),
	}
}

// has reports whether the source supplied key.
func (l *layer) has(key string) bool {
	_, ok := l.keys[key]
	return ok
}

// overrideEmpty copies the zero values the source supplied explicitly into
// dst. mergo never lets an empty source value overwrite a set one, so a
// supplied false, 0, "" or empty origins list is applied here.
func (l *layer) overrideEmpty(dst *Settings) {
	src := settingsFields(l.Settings)
	fields := settingsFields(dst)

	for key := range l.keys {
		value, ok := src[key]
		if !ok || !isEmpty(value) {
			continue
		}
		fields[key].Set(value)
	}
}

// assign stores *src into dst and records key when the source supplied a
// value (src is non-nil).
func assign[T any](l *layer, key string, dst *T, src *T) {
	if src == nil {
		return
	}

	*dst = *src
	l.keys[key] = struct{}{}
}

// settingsFields maps every environment variable name to the settable
// field of cfg it populates.
func settingsFields(cfg *Settings) map[string]reflect.Value {
	fields := make(map[string]reflect.Value)
	collectFields(reflect.ValueOf(cfg).Elem(), "", fields)
	return fields
}

func collectFields(v reflect.Value, prefix string, fields map[string]reflect.Value) {
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Type.Kind() == reflect.Struct {
			collectFields(v.Field(i), prefix+sf.Tag.Get("envPrefix"), fields)
			continue
		}

		if key := sf.Tag.Get("env"); key != "" {
			fields[prefix+key] = v.Field(i)
		}
	}
}

func isEmpty(v reflect.Value) bool {
	if v.Kind() == reflect.Slice {
		return v.Len() == 0
	}

	return v.IsZero()
}
