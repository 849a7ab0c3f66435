package cmdargs

// IterateTokens calls yield for every argument with its role. Parameters of the value flags
// are reported as RoleFlagValue tokens right after the run they belong to.
// A missing parameter is not reported: the iteration just ends.
func (args Args) IterateTokens(yield func(token Token) bool) {
	cursor := NewCursor(args.Args)
	for {
		token, ok := cursor.Next()
		if !ok {
			break
		}
		if !yield(token) {
			return
		}
		for _, flagChar := range token.FlagChars {
			if !args.isValueFlag(flagChar) {
				continue
			}
			value, ok := cursor.NextValue()
			if !ok {
				return
			}
			if !yield(value) {
				return
			}
		}
	}

	for i, arg := range cursor.Remaining() {
		token := Token{
			Index: cursor.Index() + i,
			Arg:   arg,
			Role:  RoleUnnamed,
		}
		if !yield(token) {
			return
		}
	}
}
