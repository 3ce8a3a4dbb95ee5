package models

// TurnRole attributes a chat turn to the student or the tutor model.
type TurnRole string

const (
	RoleUser  TurnRole = "user"
	RoleModel TurnRole = "model"
)

// ChatTurn is one message in the roleplay conversation. Turns are kept in
// insertion order, which is also display order.
type ChatTurn struct {
	Role TurnRole
	Text string
}
