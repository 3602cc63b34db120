package server

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/strand-ui/strand/pkg/render"
)

var liveUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
}

// LiveHandler streams render chunks over a websocket, one text message per
// chunk, so a client can observe the chunk boundaries the stream driver
// produces. After the final chunk the connection closes normally; a render
// error closes it with an internal-error close code carrying the message.
func LiveHandler(page Page, opts ...Option) http.Handler {
	cfg := newConfig(opts)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := liveUpgrader.Upgrade(w, r, nil)
		if err != nil {
			cfg.logger().Error("websocket upgrade failed", "path", r.URL.Path, "error", err)
			return
		}
		defer conn.Close()

		node, vctx := page(r)
		stream := render.RenderToStream(r.Context(), node, vctx, cfg.Options)

		for chunk := range stream.Chunks() {
			if err := conn.WriteMessage(websocket.TextMessage, []byte(chunk)); err != nil {
				stream.Close()
				if websocket.IsUnexpectedCloseError(err,
					websocket.CloseGoingAway,
					websocket.CloseNormalClosure) {
					cfg.logger().Error("websocket write failed", "path", r.URL.Path, "error", err)
				}
				return
			}
		}

		if err := stream.Err(); err != nil {
			cfg.logger().Error("render failed", "path", r.URL.Path, "error", err)
			msg := websocket.FormatCloseMessage(websocket.CloseInternalServerErr, err.Error())
			conn.WriteMessage(websocket.CloseMessage, msg)
			return
		}

		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		conn.WriteMessage(websocket.CloseMessage, msg)
	})
}
