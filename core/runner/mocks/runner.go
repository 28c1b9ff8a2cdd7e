package mocks

import (
	"context"

	"dash-launcher/core/runner"

	"github.com/stretchr/testify/mock"
)

// Runner is a mock implementation of runner.Runner
type Runner struct {
	mock.Mock
}

func (m *Runner) Run(ctx context.Context, cmd runner.Command) (*runner.Result, error) {
	args := m.Called(ctx, cmd)
	if res, ok := args.Get(0).(*runner.Result); ok {
		return res, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Runner) Exec(cmd runner.Command) error {
	args := m.Called(cmd)
	return args.Error(0)
}
