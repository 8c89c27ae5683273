package auth

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/blackholeinfiverse37/8-pillers-Workflow-Gurukul-HR/pkg/model"
)

// ErrNoStrategySucceeded is returned when every login attempt failed.
var ErrNoStrategySucceeded = errors.New("auth: no login strategy succeeded")

// Strategy is one way to log in: a named endpoint attempt producing a role.
// The portal has separate login endpoints for candidate/recruiter and
// client accounts, and a user's role is not always known up front.
type Strategy struct {
	Name  string
	Role  model.Role
	Login func(ctx context.Context, email, password string) (*model.AuthRes, error)
}

// Login tries strategies in order and stops at the first success, saving
// the result into the session. When the session already knows the user's
// role, the strategy for that role is tried first.
func Login(ctx context.Context, session *Session, strategies []Strategy, email, password string, log *zap.Logger) (*model.AuthRes, error) {
	if log == nil {
		log = zap.NewNop()
	}

	ordered := orderByRole(strategies, session.Role())
	var lastErr error
	for _, st := range ordered {
		res, err := st.Login(ctx, email, password)
		if err != nil {
			log.Sugar().Debugw("login attempt failed", "strategy", st.Name, "err", err)
			lastErr = err
			continue
		}
		if res.User.Role == "" {
			res.User.Role = st.Role
		}
		session.Save(res)
		log.Sugar().Infow("login succeeded", "strategy", st.Name, "role", res.User.Role)
		return res, nil
	}
	if lastErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoStrategySucceeded, lastErr)
	}
	return nil, ErrNoStrategySucceeded
}

func orderByRole(strategies []Strategy, preferred model.Role) []Strategy {
	if preferred == "" {
		return strategies
	}
	ordered := make([]Strategy, 0, len(strategies))
	for _, st := range strategies {
		if st.Role == preferred {
			ordered = append(ordered, st)
		}
	}
	for _, st := range strategies {
		if st.Role != preferred {
			ordered = append(ordered, st)
		}
	}
	return ordered
}
