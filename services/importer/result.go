package importer

import "fmt"

// Status is the overall severity of an import run.
type Status int

// Import severities, from clean run to crash.
const (
	StatusOK    Status = 0
	StatusMinor Status = 1 // equipment rows failed, systems are in
	StatusMajor Status = 2 // system rows failed, equipment import cancelled
	StatusFatal Status = 3 // file unreadable or cleaning failed
	StatusCrash Status = 4 // unexpected runtime failure
)

// String returns the display name of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusMinor:
		return "MINOR"
	case StatusMajor:
		return "MAJOR"
	case StatusFatal:
		return "FATAL"
	case StatusCrash:
		return "CRASH"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// MessageType qualifies one traceback message.
type MessageType int

// Traceback message kinds.
const (
	MessageSuccess MessageType = 0
	MessageInfo    MessageType = 1
	MessageError   MessageType = 2
)

// String returns the display name of the message type.
func (t MessageType) String() string {
	switch t {
	case MessageSuccess:
		return "SUCCESS"
	case MessageInfo:
		return "INFO"
	case MessageError:
		return "ERROR"
	}
	return fmt.Sprintf("MessageType(%d)", int(t))
}

// Message is one line of the import traceback.
type Message struct {
	Type  MessageType `json:"type"`
	Texte string      `json:"texte"`
}

// Result is the outcome of an import run: the overall severity and the full
// traceback, in order of emission.
type Result struct {
	Status   Status    `json:"statut"`
	Messages []Message `json:"messages"`
}

func (r *Result) success(format string, args ...interface{}) {
	r.Messages = append(r.Messages, Message{Type: MessageSuccess, Texte: fmt.Sprintf(format, args...)})
}

func (r *Result) info(format string, args ...interface{}) {
	r.Messages = append(r.Messages, Message{Type: MessageInfo, Texte: fmt.Sprintf(format, args...)})
}

func (r *Result) erreur(format string, args ...interface{}) {
	r.Messages = append(r.Messages, Message{Type: MessageError, Texte: fmt.Sprintf(format, args...)})
}
