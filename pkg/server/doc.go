// Package server serves rendered trees over HTTP. Handler streams chunks
// into the response as they are produced, flushing at every chunk boundary
// so large pages begin arriving before rendering completes. Router mounts
// pages on a chi router; LiveHandler streams the same chunks over a
// websocket, one message per chunk.
package server
