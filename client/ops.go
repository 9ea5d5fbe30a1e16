package client

import (
	"context"

	"github.com/smppgo/smpp5c/pdu"
)

// Typed Send methods, one pair per PDU, grounded on the donor's
// Send<PDU>/Send<PDU>Resp free-function pairing (smpp.go) and converted
// into methods on *Client.

// cast type-asserts body into T, reporting UnexpectedResponseError instead
// of panicking when the peer answers with a different command — a
// generic_nack in place of the specific *_resp is valid SMPP behavior.
func cast[T pdu.Body](header pdu.Header, body pdu.Body) (T, error) {
	v, ok := body.(T)
	if !ok {
		var zero T
		return zero, &UnexpectedResponseError{Command: header.ID}
	}
	return v, nil
}

func (cl *Client) checkInterfaceVersion(want pdu.InterfaceVersion, opts *pdu.Options) error {
	if !cl.c.opts.checkInterfaceVer || opts == nil {
		return nil
	}
	got, ok := opts.Get(pdu.TagScInterfaceVersion)
	if !ok || len(got) == 0 {
		return nil
	}
	reported := pdu.InterfaceVersion(got[0])
	if reported != want {
		return &UnsupportedInterfaceVersionError{Version: reported}
	}
	return nil
}

// BindTransmitter binds as an ESME transmitter.
func (cl *Client) BindTransmitter(ctx context.Context, p *pdu.BindTransmitter, opts ...RequestOption) (*pdu.BindTransmitterResp, error) {
	h, body, err := cl.Send(ctx, p, opts...)
	if err != nil {
		return nil, err
	}
	resp, err := cast[*pdu.BindTransmitterResp](h, body)
	if err != nil {
		return nil, err
	}
	return resp, cl.checkInterfaceVersion(p.InterfaceVersion, resp.Options)
}

// BindTransmitterResp answers a peer's bind_transmitter request.
func (cl *Client) BindTransmitterResp(ctx context.Context, sequence uint32, p *pdu.BindTransmitterResp, opts ...RequestOption) error {
	return cl.SendUnregistered(ctx, sequence, p, opts...)
}

// BindReceiver binds as an ESME receiver.
func (cl *Client) BindReceiver(ctx context.Context, p *pdu.BindReceiver, opts ...RequestOption) (*pdu.BindReceiverResp, error) {
	h, body, err := cl.Send(ctx, p, opts...)
	if err != nil {
		return nil, err
	}
	resp, err := cast[*pdu.BindReceiverResp](h, body)
	if err != nil {
		return nil, err
	}
	return resp, cl.checkInterfaceVersion(p.InterfaceVersion, resp.Options)
}

// BindReceiverResp answers a peer's bind_receiver request.
func (cl *Client) BindReceiverResp(ctx context.Context, sequence uint32, p *pdu.BindReceiverResp, opts ...RequestOption) error {
	return cl.SendUnregistered(ctx, sequence, p, opts...)
}

// BindTransceiver binds as an ESME transceiver.
func (cl *Client) BindTransceiver(ctx context.Context, p *pdu.BindTransceiver, opts ...RequestOption) (*pdu.BindTransceiverResp, error) {
	h, body, err := cl.Send(ctx, p, opts...)
	if err != nil {
		return nil, err
	}
	resp, err := cast[*pdu.BindTransceiverResp](h, body)
	if err != nil {
		return nil, err
	}
	return resp, cl.checkInterfaceVersion(p.InterfaceVersion, resp.Options)
}

// BindTransceiverResp answers a peer's bind_transceiver request.
func (cl *Client) BindTransceiverResp(ctx context.Context, sequence uint32, p *pdu.BindTransceiverResp, opts ...RequestOption) error {
	return cl.SendUnregistered(ctx, sequence, p, opts...)
}

// Unbind initiates unbinding.
func (cl *Client) Unbind(ctx context.Context, opts ...RequestOption) (*pdu.UnbindResp, error) {
	h, body, err := cl.Send(ctx, &pdu.Unbind{}, opts...)
	if err != nil {
		return nil, err
	}
	return cast[*pdu.UnbindResp](h, body)
}

// UnbindResp answers a peer's unbind request.
func (cl *Client) UnbindResp(ctx context.Context, sequence uint32, opts ...RequestOption) error {
	return cl.SendUnregistered(ctx, sequence, &pdu.UnbindResp{}, opts...)
}

// EnquireLink sends an explicit keep-alive probe. The actor also sends
// its own probes on WithEnquireLinkInterval; this method is for callers
// that want to probe on demand.
func (cl *Client) EnquireLink(ctx context.Context, opts ...RequestOption) error {
	_, _, err := cl.Send(ctx, &pdu.EnquireLink{}, opts...)
	return err
}

// EnquireLinkResp sends an enquire_link_resp for sequence. The actor already
// answers every incoming enquire_link on its own, so a peer's enquire_link
// never reaches callers as an IncomingPDU event.
func (cl *Client) EnquireLinkResp(ctx context.Context, sequence uint32, opts ...RequestOption) error {
	return cl.SendUnregistered(ctx, sequence, &pdu.EnquireLinkResp{}, opts...)
}

// GenericNack rejects an unparsable or unexpected command.
func (cl *Client) GenericNack(ctx context.Context, sequence uint32, status pdu.CommandStatus) error {
	return cl.SendUnregistered(ctx, sequence, &pdu.GenericNack{}, WithStatus(status))
}

// SubmitSm submits a short message for delivery.
func (cl *Client) SubmitSm(ctx context.Context, p *pdu.SubmitSm, opts ...RequestOption) (*pdu.SubmitSmResp, error) {
	h, body, err := cl.Send(ctx, p, opts...)
	if err != nil {
		return nil, err
	}
	return cast[*pdu.SubmitSmResp](h, body)
}

// DeliverSmResp answers a peer-pushed deliver_sm (a mobile-terminated
// message or a delivery receipt).
func (cl *Client) DeliverSmResp(ctx context.Context, sequence uint32, p *pdu.DeliverSmResp, opts ...RequestOption) error {
	return cl.SendUnregistered(ctx, sequence, p, opts...)
}

// QuerySm queries the state of a previously submitted message.
func (cl *Client) QuerySm(ctx context.Context, p *pdu.QuerySm, opts ...RequestOption) (*pdu.QuerySmResp, error) {
	h, body, err := cl.Send(ctx, p, opts...)
	if err != nil {
		return nil, err
	}
	return cast[*pdu.QuerySmResp](h, body)
}

// CancelSm cancels a previously submitted message.
func (cl *Client) CancelSm(ctx context.Context, p *pdu.CancelSm, opts ...RequestOption) (*pdu.CancelSmResp, error) {
	h, body, err := cl.Send(ctx, p, opts...)
	if err != nil {
		return nil, err
	}
	return cast[*pdu.CancelSmResp](h, body)
}

// ReplaceSm replaces the content of a previously submitted message.
func (cl *Client) ReplaceSm(ctx context.Context, p *pdu.ReplaceSm, opts ...RequestOption) (*pdu.ReplaceSmResp, error) {
	h, body, err := cl.Send(ctx, p, opts...)
	if err != nil {
		return nil, err
	}
	return cast[*pdu.ReplaceSmResp](h, body)
}

// DataSm submits a message over the data_sm/data_sm_resp exchange, used
// for interactive or session-based transfers in place of submit_sm.
func (cl *Client) DataSm(ctx context.Context, p *pdu.DataSm, opts ...RequestOption) (*pdu.DataSmResp, error) {
	h, body, err := cl.Send(ctx, p, opts...)
	if err != nil {
		return nil, err
	}
	return cast[*pdu.DataSmResp](h, body)
}

// DataSmResp answers a peer-pushed data_sm.
func (cl *Client) DataSmResp(ctx context.Context, sequence uint32, p *pdu.DataSmResp, opts ...RequestOption) error {
	return cl.SendUnregistered(ctx, sequence, p, opts...)
}

// SubmitMulti submits a short message to multiple destinations.
func (cl *Client) SubmitMulti(ctx context.Context, p *pdu.SubmitMulti, opts ...RequestOption) (*pdu.SubmitMultiResp, error) {
	h, body, err := cl.Send(ctx, p, opts...)
	if err != nil {
		return nil, err
	}
	return cast[*pdu.SubmitMultiResp](h, body)
}

// BroadcastSm submits a message for broadcast distribution.
func (cl *Client) BroadcastSm(ctx context.Context, p *pdu.BroadcastSm, opts ...RequestOption) (*pdu.BroadcastSmResp, error) {
	h, body, err := cl.Send(ctx, p, opts...)
	if err != nil {
		return nil, err
	}
	return cast[*pdu.BroadcastSmResp](h, body)
}

// QueryBroadcastSm queries the state of a previously submitted broadcast.
func (cl *Client) QueryBroadcastSm(ctx context.Context, p *pdu.QueryBroadcastSm, opts ...RequestOption) (*pdu.QueryBroadcastSmResp, error) {
	h, body, err := cl.Send(ctx, p, opts...)
	if err != nil {
		return nil, err
	}
	return cast[*pdu.QueryBroadcastSmResp](h, body)
}

// AlertNotification notifies the ESME that a mobile subscriber has become
// available. It has no response PDU, so this always sends fire-and-forget.
func (cl *Client) AlertNotification(ctx context.Context, p *pdu.AlertNotification, opts ...RequestOption) error {
	_, _, err := cl.Send(ctx, p, append(opts, WithNoWait())...)
	return err
}

// CancelBroadcastSm cancels a previously submitted broadcast.
func (cl *Client) CancelBroadcastSm(ctx context.Context, p *pdu.CancelBroadcastSm, opts ...RequestOption) (*pdu.CancelBroadcastSmResp, error) {
	h, body, err := cl.Send(ctx, p, opts...)
	if err != nil {
		return nil, err
	}
	return cast[*pdu.CancelBroadcastSmResp](h, body)
}
