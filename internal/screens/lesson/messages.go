package lesson

import "github.com/abhisek/riskdrill/internal/controller"

// replyMsg carries a controller reply (or failure) back to the screen.
type replyMsg struct {
	reply *controller.Reply
	err   error
}

// abandonedMsg reports the outcome of abandoning the lesson.
type abandonedMsg struct {
	reply *controller.Reply
	err   error
}
