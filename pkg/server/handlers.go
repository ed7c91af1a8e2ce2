package server

import (
	"github.com/edaha-kurose/Buyer-matchingSystem/handler"
)

type Handlers struct {
	Auth         *handler.Auth
	Point        *handler.Point
	Proposal     *handler.Proposal
	Comment      *handler.Comment
	Notification *handler.Notification
	Buyer        *handler.Buyer
}
