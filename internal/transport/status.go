package transport

// Status labels and colors shown by the connection indicator.
const (
	LabelConnected    = "SYSTEM: CONNECTED"
	LabelDisconnected = "SYSTEM: DISCONNECTED"
	ColorConnected    = "#00ff41"
	ColorDisconnected = "#ff0000"
)

// StatusHandler builds a Handler that mirrors open/close into sink and hands
// every message to recv. It never touches anything else on the surface.
func StatusHandler(sink StatusSink, recv MessageReceiver) Handler {
	return Handler{
		OnOpen: func() {
			sink.SetStatus(LabelConnected, ColorConnected)
		},
		OnClose: func(error) {
			sink.SetStatus(LabelDisconnected, ColorDisconnected)
		},
		OnMessage: recv.HandleMessage,
	}
}
