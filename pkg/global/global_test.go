package global

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"launch-focus/pkg/config"
	"launch-focus/pkg/logger"
)

func TestInitGlobalsFirstCallWins(t *testing.T) {
	log := logger.Nop()
	first := config.DefaultConfig(log)
	second := config.DefaultConfig(log)

	InitGlobals(first, log, nil)
	InitGlobals(second, logger.Nop(), nil)

	c, l, n := GetAll()
	assert.Same(t, first, c)
	assert.Same(t, log, l)
	assert.Nil(t, n)
	assert.Same(t, first, GetConfig())
	assert.Same(t, log, GetLogger())
	assert.Nil(t, GetNotifier())
}
