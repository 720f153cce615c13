// Package ws serves the desktop's live window stream over WebSocket.
//
// On connect the server sends a snapshot of every window, then one
// window_event per committed window manager mutation:
//
//	{"type":"snapshot","windows":[...],"seq":12}
//	{"type":"window_event","event":{"seq":13,"type":"focused","window":{...}}}
//
// Clients send commands that mirror the window manager API:
//
//	{"type":"focus","window_id":"win_..."}
//	{"type":"move","window_id":"win_...","x":120,"y":80}
//	{"type":"resize","window_id":"win_...","width":640,"height":480}
//	{"type":"minimize","window_id":"win_..."}
//	{"type":"close","window_id":"win_..."}
//	{"type":"ping"}
//
// A successful command is answered by the window_event it caused; a failed
// one by {"type":"error",...}. Clients that fall behind are disconnected.
package ws
