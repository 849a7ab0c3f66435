package cmdargs

type Role int

func (r Role) Has(role Role) bool {
	return r&role != 0
}

const (
	RoleFlagRun   Role = 1 << iota
	RoleFlagValue      = 1 << iota
	RoleUnnamed        = 1 << iota
)

type Token struct {
	// Index is the position of Arg in the arguments list
	Index int
	Arg   string
	// FlagChars contains the flag names of a RoleFlagRun token: "-xy" has 'x' and 'y'
	FlagChars []rune
	// Role is one of the Role constants:
	// RoleFlagRun      // "-" followed by one or more flag chars, "--x" has '-' and 'x'
	// RoleFlagValue    // consumed as a parameter of a flag from the preceding run
	// RoleUnnamed      // the first non-flag token and everything after it
	Role Role
}

// Classify determines the role of a single argument without looking at its neighbours.
// Every char after the leading "-" is a flag char, so "--" is a run of the '-' flag.
// A lone "-" is an unnamed argument: parsing stops at it instead of skipping it as an empty run.
func Classify(index int, arg string) Token {
	token := Token{
		Index: index,
		Arg:   arg,
	}
	switch {
	case len(arg) < 2 || arg[0] != '-':
		token.Role = RoleUnnamed
	default:
		token.Role = RoleFlagRun
		token.FlagChars = []rune(arg[1:])
	}
	return token
}
