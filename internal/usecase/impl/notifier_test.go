package impl

import (
	"testing"
	"time"

	"ayurfresh/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_SendOTP_MessageReflectsExpiryWindow(t *testing.T) {
	sms := &recorderSMSSender{}
	n := NewNotifier(NotifierParams{
		Mail:   &recorderMailSender{},
		SMS:    sms,
		Config: &config.Config{},
		Logger: newDiscardLogger(),
	})

	n.SendOTP("+919876543210", "482913", 10*time.Minute)

	require.Eventually(t, func() bool { return len(sms.sentBodies()) == 1 }, time.Second, 5*time.Millisecond)
	body := sms.sentBodies()[0]
	assert.Contains(t, body, "482913")
	assert.Contains(t, body, "expires in 10 minutes")
}

func TestNotifier_SendOTP_SubMinuteWindowReportsOneMinute(t *testing.T) {
	sms := &recorderSMSSender{}
	n := NewNotifier(NotifierParams{
		Mail:   &recorderMailSender{},
		SMS:    sms,
		Config: &config.Config{},
		Logger: newDiscardLogger(),
	})

	n.SendOTP("+919876543210", "482913", 20*time.Second)

	require.Eventually(t, func() bool { return len(sms.sentBodies()) == 1 }, time.Second, 5*time.Millisecond)
	assert.Contains(t, sms.sentBodies()[0], "expires in 1 minute.")
}
