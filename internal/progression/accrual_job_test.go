package progression

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/osse101/EmojiKombat_Go/mocks"
)

func TestAccrualJob_Process(t *testing.T) {
	svc := mocks.NewMockProgressionService(t)
	svc.On("AccrueAll", mock.Anything).Return(3, nil).Once()

	job := NewAccrualJob(svc)
	assert.Equal(t, "idle_accrual", job.Name())
	assert.NoError(t, job.Process(context.Background()))
}

func TestAccrualJob_PropagatesError(t *testing.T) {
	svc := mocks.NewMockProgressionService(t)
	svc.On("AccrueAll", mock.Anything).Return(0, errors.New("context canceled")).Once()

	err := NewAccrualJob(svc).Process(context.Background())
	assert.EqualError(t, err, "context canceled")
}
