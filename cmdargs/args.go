package cmdargs

type Args struct {
	Args       []string
	valueFlags map[rune]struct{}
}

func NewArgs(args []string) Args {
	return Args{
		Args: args,
	}
}

// WithValueFlags returns a copy of args that treats the given flag chars as flags consuming a parameter
func (args Args) WithValueFlags(flagChars ...rune) Args {
	valueFlags := make(map[rune]struct{}, len(args.valueFlags)+len(flagChars))
	for flagChar := range args.valueFlags {
		valueFlags[flagChar] = struct{}{}
	}
	for _, flagChar := range flagChars {
		valueFlags[flagChar] = struct{}{}
	}
	args.valueFlags = valueFlags
	return args
}

func (args Args) isValueFlag(flagChar rune) bool {
	_, has := args.valueFlags[flagChar]
	return has
}
