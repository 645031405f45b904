package e2e

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vendrahq/vendra/ent/inboundjob"
	"github.com/vendrahq/vendra/pkg/agent"
)

// ────────────────────────────────────────────────────────────
// Resilience — provider failures on either side of the turn:
// the model erroring out, and the messaging channel flaking.
// ────────────────────────────────────────────────────────────

const apologyReply = "Sorry, something went wrong on our side. Please try again in a moment."

// TestE2E_ModelFailuresFallBackToApology runs three broken turns: a
// transport error, an in-stream error chunk, and a stream that ends without
// text. Each still completes its job and apologizes to the customer.
func TestE2E_ModelFailuresFallBackToApology(t *testing.T) {
	app := NewTestApp(t)
	tenant := seedTenant(t, app.EntClient)

	app.LLM.
		Add(LLMScriptEntry{Err: errors.New("scripted transport failure")}).
		Add(LLMScriptEntry{Chunks: []agent.Chunk{
			&agent.ErrorChunk{Message: "overloaded", Code: "overloaded_error", Retryable: true},
		}}).
		Add(LLMScriptEntry{Chunks: []agent.Chunk{
			&agent.UsageChunk{InputTokens: 80, TotalTokens: 80},
		}})

	require.Equal(t, 1, app.PostWhatsAppText(t, "wamid.f1", "hi"))
	deliveries := app.WaitForDeliveries(t, app.WhatsApp, 1)
	assert.Equal(t, apologyReply, deliveries[0].Text)

	require.Equal(t, 1, app.PostWhatsAppText(t, "wamid.f2", "hello?"))
	deliveries = app.WaitForDeliveries(t, app.WhatsApp, 2)
	assert.Equal(t, apologyReply, deliveries[1].Text)

	require.Equal(t, 1, app.PostWhatsAppText(t, "wamid.f3", "are you there"))
	deliveries = app.WaitForDeliveries(t, app.WhatsApp, 3)
	assert.Equal(t, apologyReply, deliveries[2].Text)

	sess := app.CustomerSession(t, tenant.Business.ID)
	jobs := app.QueryJobs(t, sess.ID)
	require.Len(t, jobs, 3)
	for _, job := range jobs {
		assert.Equal(t, inboundjob.StatusCompleted, job.Status)
	}
	// Broken turns still leave a trace for the operator to inspect.
	assert.Equal(t, 3, app.CountTraces(t, sess.ID))
}

// TestE2E_OutboundRetryRecovers flakes the channel once; the dispatcher's
// in-process retry delivers on the second attempt and the job completes.
func TestE2E_OutboundRetryRecovers(t *testing.T) {
	app := NewTestApp(t)
	tenant := seedTenant(t, app.EntClient)

	app.LLM.AddText("We close at 11pm tonight.")
	app.WhatsApp.FailNext(1)

	require.Equal(t, 1, app.PostWhatsAppText(t, "wamid.r1", "until when are you open?"))
	deliveries := app.WaitForDeliveries(t, app.WhatsApp, 1)
	assert.Equal(t, "We close at 11pm tonight.", deliveries[0].Text)

	sess := app.CustomerSession(t, tenant.Business.ID)
	jobs := app.QueryJobs(t, sess.ID)
	require.Len(t, jobs, 1)
	assert.Equal(t, inboundjob.StatusCompleted, jobs[0].Status)
	assert.Equal(t, 1, app.WhatsApp.Count())
}

// TestE2E_OutboundOutageFailsJobTerminally exhausts both send attempts. The
// turn's side effects are committed, so the job must fail rather than
// requeue and replay them.
func TestE2E_OutboundOutageFailsJobTerminally(t *testing.T) {
	app := NewTestApp(t)
	tenant := seedTenant(t, app.EntClient)

	app.LLM.AddText("Here is our menu.")
	app.WhatsApp.FailNext(2)

	require.Equal(t, 1, app.PostWhatsAppText(t, "wamid.o1", "menu please"))
	app.WaitForQueueDrained(t, tenant.Business.ID)

	sess := app.CustomerSession(t, tenant.Business.ID)
	jobs := app.QueryJobs(t, sess.ID)
	require.Len(t, jobs, 1)
	assert.Equal(t, inboundjob.StatusFailed, jobs[0].Status)
	require.NotNil(t, jobs[0].Error)
	assert.Contains(t, *jobs[0].Error, "delivery failed")
	assert.Equal(t, 0, app.WhatsApp.Count())

	// No phantom bot row on the thread either.
	msgs := app.QueryMessages(t, sess.ID)
	require.Len(t, msgs, 1)
}
