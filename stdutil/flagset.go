package stdutil

import "flag"

type boolFlag interface {
	IsBoolFlag() bool
}

// FormalFlags is a map where key is a flag name and value is what flag.Getter returns for the flag.
// The value is nil if the flag.Value is not a flag.Getter
type FormalFlags map[string]any

// GetFormalFlags returns a map where key is a flag name and value is the flag current value
func GetFormalFlags(flagSet *flag.FlagSet) FormalFlags {
	flags := make(FormalFlags)
	flagSet.VisitAll(func(f *flag.Flag) {
		var value any
		if getter, ok := f.Value.(flag.Getter); ok {
			value = getter.Get()
		}
		if value == nil && IsBoolFlag(f) {
			value = false
		}
		flags[f.Name] = value
	})
	return flags
}

// IsBoolFlag reports whether the flag can be used without a value
func IsBoolFlag(f *flag.Flag) bool {
	if boolFlag, ok := f.Value.(boolFlag); ok {
		return boolFlag.IsBoolFlag()
	}
	return false
}
