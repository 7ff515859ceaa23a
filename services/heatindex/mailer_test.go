package heatindex

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSendIssueValidation(t *testing.T) {
	err := sendIssue(SmtpConfig{}, "subject", "<html></html>")
	require.ErrorContains(t, err, "no subscribers")

	err = sendIssue(SmtpConfig{
		Subscribers: []string{"reader@example.com"},
	}, "subject", "<html></html>")
	require.ErrorContains(t, err, "smtp config incomplete")
}
