package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEmails struct {
	got  *resend.SendEmailRequest
	resp *resend.SendEmailResponse
	err  error
}

func (f *fakeEmails) Send(params *resend.SendEmailRequest) (*resend.SendEmailResponse, error) {
	f.got = params
	return f.resp, f.err
}

type recordingLogger struct {
	msgs []string
	kvs  [][]interface{}
}

func (l *recordingLogger) Infow(msg string, kv ...interface{}) {
	l.msgs = append(l.msgs, msg)
	l.kvs = append(l.kvs, kv)
}

func TestResendSender_Send(t *testing.T) {
	fake := &fakeEmails{resp: &resend.SendEmailResponse{Id: "msg_1"}}
	s := &ResendSender{emails: fake}

	err := s.Send(context.Background(), Message{From: "from@x.com", To: "ana@x.com", Subject: "hi", HTML: "<h1>1</h1>"})
	require.NoError(t, err)
	require.NotNil(t, fake.got)
	assert.Equal(t, "from@x.com", fake.got.From)
	assert.Equal(t, []string{"ana@x.com"}, fake.got.To)
	assert.Equal(t, "hi", fake.got.Subject)
	assert.Equal(t, "<h1>1</h1>", fake.got.Html)
}

func TestResendSender_SendError(t *testing.T) {
	s := &ResendSender{emails: &fakeEmails{err: errors.New("422 validation_error")}}

	err := s.Send(context.Background(), Message{To: "ana@x.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "422 validation_error")
}

func TestResendSender_EmptyResponse(t *testing.T) {
	s := &ResendSender{emails: &fakeEmails{resp: &resend.SendEmailResponse{}}}
	assert.Error(t, s.Send(context.Background(), Message{To: "ana@x.com"}))
}

func TestResendSender_CanceledContext(t *testing.T) {
	fake := &fakeEmails{resp: &resend.SendEmailResponse{Id: "msg_1"}}
	s := &ResendSender{emails: fake}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, s.Send(ctx, Message{To: "ana@x.com"}), context.Canceled)
	assert.Nil(t, fake.got)
}

func TestLogSender_Send(t *testing.T) {
	l := &recordingLogger{}
	require.NoError(t, NewLogSender(l).Send(context.Background(), Message{To: "ana@x.com", Subject: "s"}))
	assert.Equal(t, []string{"mail_logged"}, l.msgs)

	// nil logger is tolerated
	require.NoError(t, NewLogSender(nil).Send(context.Background(), Message{}))
}

func TestNew(t *testing.T) {
	s, err := New("log", "", nil)
	require.NoError(t, err)
	assert.IsType(t, &LogSender{}, s)

	_, err = New("resend", "", nil)
	assert.ErrorIs(t, err, errMissingAPIKey)

	s, err = New("Resend", "re_test", nil)
	require.NoError(t, err)
	assert.IsType(t, &ResendSender{}, s)

	_, err = New("pigeon", "k", nil)
	assert.Error(t, err)
}
