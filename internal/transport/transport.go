package transport

// MessageReceiver receives raw inbound frame messages.
type MessageReceiver interface {
	HandleMessage(data []byte)
}

// StatusSink displays the connection status indicator.
type StatusSink interface {
	SetStatus(label, color string)
}

// Handler callbacks for connection events. All callbacks are invoked from a
// single goroutine, one at a time.
type Handler struct {
	OnOpen    func()
	OnClose   func(err error)
	OnMessage func(data []byte)
}
