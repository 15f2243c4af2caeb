package quorumsdk

import (
	"context"
	"fmt"
)

// FlowState is the current position of an InviteFlow.
type FlowState string

const (
	FlowIdle         FlowState = "idle"
	FlowChecking     FlowState = "checking"
	FlowChecked      FlowState = "checked"
	FlowCheckFailed  FlowState = "check_failed"
	FlowAccepting    FlowState = "accepting"
	FlowAccepted     FlowState = "accepted"
	FlowAcceptFailed FlowState = "accept_failed"
)

// ErrFlowState is returned when an operation is invoked from a state that
// does not allow it.
type ErrFlowState struct {
	State FlowState
	Op    string
}

func (e *ErrFlowState) Error() string {
	return fmt.Sprintf("invite flow: cannot %s while %s", e.Op, e.State)
}

// InviteFlow drives the client side of the invitation lifecycle as an
// explicit state machine:
//
//	Idle → Checking → Checked | CheckFailed
//	Checked → Accepting → Accepted | AcceptFailed
//
// There is no automatic retry; a failed check can be re-run with Restart and
// a failed accept can be retried with Accept (the checked token metadata is
// retained). An InviteFlow is not safe for concurrent use; drive it from a
// single goroutine.
type InviteFlow struct {
	client *SDKClient
	token  string

	state   FlowState
	details *CheckTokenResponse
	result  *AcceptInviteResponse
	err     error
}

// NewInviteFlow creates a flow for one invitation token, starting Idle.
func NewInviteFlow(client *SDKClient, token string) *InviteFlow {
	return &InviteFlow{client: client, token: token, state: FlowIdle}
}

// State returns the current state.
func (f *InviteFlow) State() FlowState { return f.state }

// Details returns the token metadata once the flow has reached Checked. It
// stays available through a failed acceptance.
func (f *InviteFlow) Details() *CheckTokenResponse { return f.details }

// Err returns the error that moved the flow into CheckFailed or
// AcceptFailed, typically a *APIError.
func (f *InviteFlow) Err() error { return f.err }

// TargetPath is where the UI should navigate after acceptance:
// "/{organizationSlug}" for organization invites, "/home" otherwise. Empty
// until the flow reaches Accepted.
func (f *InviteFlow) TargetPath() string {
	if f.state != FlowAccepted || f.result == nil {
		return ""
	}
	return f.result.TargetPath
}

// Check validates the token without consuming it. Allowed from Idle and
// CheckFailed.
func (f *InviteFlow) Check(ctx context.Context) error {
	switch f.state {
	case FlowIdle, FlowCheckFailed:
	default:
		return &ErrFlowState{State: f.state, Op: "check"}
	}

	f.state = FlowChecking
	f.err = nil

	details, err := f.client.CheckToken(ctx, f.token)
	if err != nil {
		f.state = FlowCheckFailed
		f.err = err
		return err
	}

	f.state = FlowChecked
	f.details = details
	return nil
}

// Accept redeems the token. Allowed from Checked and AcceptFailed; a failure
// keeps the checked metadata so the UI can re-render the form.
func (f *InviteFlow) Accept(ctx context.Context, req AcceptInviteRequest) error {
	switch f.state {
	case FlowChecked, FlowAcceptFailed:
	default:
		return &ErrFlowState{State: f.state, Op: "accept"}
	}

	f.state = FlowAccepting
	f.err = nil

	result, err := f.client.AcceptInvite(ctx, f.token, req)
	if err != nil {
		f.state = FlowAcceptFailed
		f.err = err
		return err
	}

	f.state = FlowAccepted
	f.result = result
	return nil
}

// Restart discards all progress and re-runs the check. Allowed from any
// state except Accepted; a consumed invitation cannot be restarted.
func (f *InviteFlow) Restart(ctx context.Context) error {
	if f.state == FlowAccepted {
		return &ErrFlowState{State: f.state, Op: "restart"}
	}

	f.state = FlowIdle
	f.details = nil
	f.result = nil
	f.err = nil
	return f.Check(ctx)
}
