package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewUsers,
	NewOrganization,
	NewProposal,
	NewProgress,
	NewComment,
	NewNotification,
	NewEvaluation,
	NewPoint,
	NewPointPackage,
)
