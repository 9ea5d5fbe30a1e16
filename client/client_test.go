package client_test

import (
	"bytes"
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/smppgo/smpp5c/client"
	"github.com/smppgo/smpp5c/frame"
	"github.com/smppgo/smpp5c/internal/transporttest"
	"github.com/smppgo/smpp5c/pdu"
)

// encodedFrame renders the exact bytes client/actor.go writes for an
// outgoing request, for scripting a transporttest.Conn expectation.
func encodedFrame(t *testing.T, h pdu.Header, body pdu.Body) []byte {
	t.Helper()
	raw, err := body.MarshalBinary()
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	require.NoError(t, frame.NewWriter(buf).WriteFrame(h, raw))
	return buf.Bytes()
}

func TestClientBindAndSubmitSm(t *testing.T) {
	local, peer := net.Pipe()
	defer peer.Close()

	cl := client.New(local, client.WithResponseTimeout(2*time.Second))
	defer cl.CloseAndWait(context.Background())

	done := make(chan struct{})
	go func() {
		defer close(done)
		rd := frame.NewReader(peer, frame.DefaultMaxLength)
		wr := frame.NewWriter(peer)

		h, body, err := rd.ReadCommand()
		require.NoError(t, err)
		bind, ok := body.(*pdu.BindTransceiver)
		require.True(t, ok)
		require.Equal(t, "esme", bind.SystemID)
		resp := &pdu.BindTransceiverResp{SystemID: "peer", Options: pdu.NewOptions().SetScInterfaceVersion(int(pdu.InterfaceVersion50))}
		raw, err := resp.MarshalBinary()
		require.NoError(t, err)
		require.NoError(t, wr.WriteFrame(pdu.Header{ID: pdu.BindTransceiverRespID, Status: pdu.StatusOK, Sequence: h.Sequence}, raw))

		h, body, err = rd.ReadCommand()
		require.NoError(t, err)
		sm, ok := body.(*pdu.SubmitSm)
		require.True(t, ok)
		require.Equal(t, "hello", sm.ShortMessage)
		resp2 := sm.Response("abc123")
		raw2, err := resp2.MarshalBinary()
		require.NoError(t, err)
		require.NoError(t, wr.WriteFrame(pdu.Header{ID: pdu.SubmitSmRespID, Status: pdu.StatusOK, Sequence: h.Sequence}, raw2))
	}()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	bindResp, err := cl.BindTransceiver(ctx, &pdu.BindTransceiver{
		SystemID:         "esme",
		Password:         "secret",
		InterfaceVersion: pdu.InterfaceVersion50,
	})
	require.NoError(t, err)
	require.Equal(t, "peer", bindResp.SystemID)

	smResp, err := cl.SubmitSm(ctx, &pdu.SubmitSm{
		SourceAddr:      "1111",
		DestinationAddr: "2222",
		ShortMessage:    "hello",
	})
	require.NoError(t, err)
	require.Equal(t, "abc123", smResp.MessageID)

	<-done
}

func TestClientResponseTimeout(t *testing.T) {
	local, peer := net.Pipe()
	defer peer.Close()

	cl := client.New(local)
	defer cl.CloseAndWait(context.Background())

	drain := make(chan struct{})
	go func() {
		rd := frame.NewReader(peer, frame.DefaultMaxLength)
		_, _, _ = rd.ReadCommand()
		<-drain
	}()

	ctx := context.Background()
	start := time.Now()
	_, _, err2 := cl.Send(ctx, &pdu.EnquireLink{}, client.WithTimeout(50*time.Millisecond))
	require.Error(t, err2)
	var timeoutErr *client.ResponseTimeoutError
	require.ErrorAs(t, err2, &timeoutErr)
	require.WithinDuration(t, start.Add(50*time.Millisecond), time.Now(), 200*time.Millisecond)

	pending, err3 := cl.PendingResponses(ctx)
	require.NoError(t, err3)
	require.Empty(t, pending)

	close(drain)
}

func TestClientCloseDrainsPending(t *testing.T) {
	local, peer := net.Pipe()
	defer peer.Close()

	cl := client.New(local)

	go func() {
		rd := frame.NewReader(peer, frame.DefaultMaxLength)
		_, _, _ = rd.ReadCommand()
	}()

	result := make(chan error, 1)
	go func() {
		_, _, err := cl.Send(context.Background(), &pdu.EnquireLink{}, client.WithNoTimeout())
		result <- err
	}()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, cl.Close(context.Background()))

	select {
	case err := <-result:
		require.ErrorIs(t, err, client.ErrConnectionClosed)
	case <-time.After(time.Second):
		t.Fatal("Send did not return after Close")
	}
}

func TestClientIncomingPDUEvent(t *testing.T) {
	local, peer := net.Pipe()
	defer peer.Close()

	cl := client.New(local, client.WithEventBuffer(4))
	defer cl.CloseAndWait(context.Background())

	wr := frame.NewWriter(peer)
	rd := frame.NewReader(peer, frame.DefaultMaxLength)

	dsm := &pdu.DeliverSm{SourceAddr: "3333", DestinationAddr: "4444", ShortMessage: "mo"}
	raw, err := dsm.MarshalBinary()
	require.NoError(t, err)
	require.NoError(t, wr.WriteFrame(pdu.Header{ID: pdu.DeliverSmID, Status: pdu.StatusOK, Sequence: 7}, raw))

	select {
	case ev := <-cl.Events():
		require.Equal(t, client.IncomingPDU, ev.Kind)
		got, ok := ev.Body.(*pdu.DeliverSm)
		require.True(t, ok)
		require.Equal(t, "mo", got.ShortMessage)
		require.NoError(t, cl.DeliverSmResp(context.Background(), ev.Header.Sequence, &pdu.DeliverSmResp{}))
	case <-time.After(time.Second):
		t.Fatal("did not receive IncomingPDU event")
	}

	h, _, err := rd.ReadCommand()
	require.NoError(t, err)
	require.Equal(t, pdu.DeliverSmRespID, h.ID)
	require.Equal(t, uint32(7), h.Sequence)
}

// TestClientReadErrorClosesConnection drives the actor over a scripted
// transporttest.Conn instead of a net.Pipe, to pin the exact outgoing wire
// bytes of the first request and to inject a raw transport read failure
// (as opposed to a malformed SMPP frame) without a second goroutine racing
// against the read loop.
func TestClientReadErrorClosesConnection(t *testing.T) {
	wantWrite := encodedFrame(t, pdu.Header{ID: pdu.EnquireLinkID, Status: pdu.StatusOK, Sequence: 1}, &pdu.EnquireLink{})

	conn := transporttest.NewConn()
	conn.ByteWrite(wantWrite).NoResp().ErrRead(nil).Wait(1).Closed()

	cl := client.New(conn, client.WithResponseTimeout(2*time.Second))

	_, _, err := cl.Send(context.Background(), &pdu.EnquireLink{})
	require.ErrorIs(t, err, client.ErrConnectionClosed)

	select {
	case <-cl.Closed():
	case <-time.After(time.Second):
		t.Fatal("client did not close after transport read error")
	}

	require.Empty(t, conn.Validate())
}

// TestClientUndecodableBodyDoesNotCloseConnection pipelines a frame whose
// body fails a string invariant followed by a well-formed one on the same
// stream: the actor must surface the first as a ReceivedUndecodable insight
// event and keep serving the second rather than tearing the connection down.
func TestClientUndecodableBodyDoesNotCloseConnection(t *testing.T) {
	local, peer := net.Pipe()
	defer peer.Close()

	cl := client.New(local, client.WithInsights(true), client.WithEventBuffer(4))
	defer cl.CloseAndWait(context.Background())

	wr := frame.NewWriter(peer)

	// cancel_sm with a non-ASCII byte in service_type: a well-formed frame
	// whose body still fails to decode.
	badBody := []byte{0x80, 0, 0, 0, 0, 0, 0, 0, 0}
	require.NoError(t, wr.WriteFrame(pdu.Header{ID: pdu.CancelSmID, Status: pdu.StatusOK, Sequence: 5}, badBody))

	select {
	case ev := <-cl.Events():
		require.Equal(t, client.ReceivedUndecodable, ev.Kind)
		require.Error(t, ev.Err)
	case <-time.After(time.Second):
		t.Fatal("did not receive ReceivedUndecodable event")
	}

	dsm := &pdu.DeliverSm{SourceAddr: "3333", DestinationAddr: "4444", ShortMessage: "still alive"}
	raw, err := dsm.MarshalBinary()
	require.NoError(t, err)
	require.NoError(t, wr.WriteFrame(pdu.Header{ID: pdu.DeliverSmID, Status: pdu.StatusOK, Sequence: 7}, raw))

	select {
	case ev := <-cl.Events():
		require.Equal(t, client.IncomingPDU, ev.Kind)
		got, ok := ev.Body.(*pdu.DeliverSm)
		require.True(t, ok)
		require.Equal(t, "still alive", got.ShortMessage)
	case <-time.After(time.Second):
		t.Fatal("connection did not resync after undecodable body")
	}
}
