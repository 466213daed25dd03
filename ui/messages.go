package ui

// Fixed notices shown to the user.
const (
	Greeting          = "Welcome to kiki's chat service. Please enter /<cmd> <param> to proceed, hit a single '&' to quit."
	CmdWarn           = "Please type in a command at the beginning started with '/' or a single '&' to quit."
	CmdNotExist       = "Unrecognized command %q. Please enter a command in the following list:"
	EmptyLine         = "Empty input, nothing to do."
	LoginSuccess      = "You are now logged in as %s. Your joined chatrooms:"
	LoginFail         = "We are sorry, login fail. Please try again later."
	EmptyChatrooms    = "You haven't joined any chatroom yet."
	SendSuccess       = "Message sent to room %d at %s."
	SendFail          = "We are sorry, your message %q to room %s could not be sent."
	NotLoggedIn       = "Please /login <username> first."
	HelpHeader        = "Complete command list:"
	HelpDetailsHeader = "each command details as follows:"
	NotJoined         = "Room %d is not in your joined chatrooms, sending anyway."
	LineTooLong       = "Input line longer than %d bytes, ignored."
	EndOfInput        = "End of input, leaving."
)
