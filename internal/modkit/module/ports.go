package module

import "reflect"

// PortSet marks what Ports() returns: each module defines a concrete
// struct of exported interface fields and hands it back here
type PortSet = any

// PortsOf pulls an interface T out of a module's Ports() bundle, either
// the bundle itself or one of its exported struct fields. ok=false when
// nothing matches
func PortsOf[T any](m Module) (t T, ok bool) {
	p := m.Ports()
	if p == nil {
		return t, false
	}
	// the bundle may implement T directly
	if v, ok2 := p.(T); ok2 {
		return v, true
	}
	rv := reflect.ValueOf(p)
	rt := rv.Type()
	// otherwise scan exported struct fields
	if rt.Kind() == reflect.Struct {
		for i := 0; i < rt.NumField(); i++ {
			f := rv.Field(i)
			if !f.CanInterface() {
				continue
			}
			if v, ok2 := f.Interface().(T); ok2 {
				return v, true
			}
		}
	}
	return t, false
}

// MustPortsOf is PortsOf for wiring in main, where a missing port is a
// programming error
func MustPortsOf[T any](m Module) T {
	if v, ok := PortsOf[T](m); ok {
		return v
	}
	panic("module: requested port not found on module " + m.Name())
}
