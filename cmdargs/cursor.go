package cmdargs

// Cursor walks the arguments left to right handing out flag runs and the parameters
// their flags consume. It stops at the first token that is not a flag run.
type Cursor struct {
	args    []string
	pos     int
	stopped bool
}

func NewCursor(args []string) *Cursor {
	return &Cursor{
		args: args,
	}
}

// Next returns the next flag run token.
// It returns false once a non-flag token is reached
func (c *Cursor) Next() (Token, bool) {
	if c.stopped || c.pos >= len(c.args) {
		c.stopped = true
		return Token{}, false
	}
	token := Classify(c.pos, c.args[c.pos])
	if token.Role.Has(RoleUnnamed) {
		c.stopped = true
		return Token{}, false
	}
	c.pos++
	return token, true
}

// NextValue consumes the next whole token as a flag parameter regardless of its shape
func (c *Cursor) NextValue() (Token, bool) {
	if c.stopped || c.pos >= len(c.args) {
		return Token{}, false
	}
	token := Token{
		Index: c.pos,
		Arg:   c.args[c.pos],
		Role:  RoleFlagValue,
	}
	c.pos++
	return token, true
}

// Index is the position of the first argument that has not been consumed
func (c *Cursor) Index() int {
	return c.pos
}

// Remaining returns the arguments that have not been consumed
func (c *Cursor) Remaining() []string {
	return c.args[c.pos:]
}
