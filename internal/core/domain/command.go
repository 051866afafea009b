package domain

// CommandName identifies a slash command.
type CommandName string

const (
	CommandStatus CommandName = "status"
	CommandStart  CommandName = "start"
	CommandStop   CommandName = "stop"
	CommandLogs   CommandName = "logs"
)

// ServerOption is the name of the container argument of start, stop and logs.
const ServerOption = "server"

// LogTail is the number of log lines returned by the logs command.
const LogTail = 10

// CommandInvocation is a single slash command received from the chat platform.
type CommandInvocation struct {
	Command      CommandName
	Container    Container
	HasContainer bool
}

// Reply is the answer to one invocation. Exactly one of Content or Embed is set.
type Reply struct {
	Content string
	Embed   *Embed
}

// Embed is a titled list of fields.
type Embed struct {
	Title  string
	Fields []EmbedField
}

type EmbedField struct {
	Name  string
	Value string
}
