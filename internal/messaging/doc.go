// Package messaging is the typed boundary between the settings surface and the
// processes it talks to.
//
// Two ordered streams feed it: the runtime stream (JSON envelopes published by the
// background service) and the helper stream (connection lifecycle of the native
// helper process). Bus merges both into one Event channel. Order is preserved within
// a stream, never across streams.
//
// Inbound notifications and outbound intents are closed sum types: every kind is a
// struct in this package implementing an unexported marker method, so consumers can
// switch over them exhaustively.
package messaging
