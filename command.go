package ftpsession

// Command is an immutable snapshot of one raw command invocation.
type Command struct {
	connection *Connection
	output     string
	hasOutput  bool
	isError    bool
	errMessage string
}

// NewCommand builds a Command. A failed command built without a message takes the connection's last recorded
// transport error as its message. Output is only kept for successful commands.
func NewCommand(conn *Connection, output string, isError bool, errMessage string) *Command {
	cmd := &Command{
		connection: conn,
		isError:    isError,
		errMessage: errMessage,
	}
	if isError {
		if errMessage == "" && conn != nil {
			cmd.errMessage = conn.LastError()
		}
		return cmd
	}
	cmd.output = output
	cmd.hasOutput = true
	return cmd
}

// Connection returns the connection the command ran on. The command does not own it.
func (c *Command) Connection() *Connection {
	return c.connection
}

// Output returns the reply lines joined by "\n". Empty for failed commands.
func (c *Command) Output() string {
	return c.output
}

// HasOutput reports whether the server produced a positive reply.
func (c *Command) HasOutput() bool {
	return c.hasOutput
}

// IsError reports whether the server rejected the command.
func (c *Command) IsError() bool {
	return c.isError
}

// ErrorMessage returns the rejection text, if any.
func (c *Command) ErrorMessage() string {
	return c.errMessage
}
