package driver

// System is one step of a frame. Systems run in registration order and may keep
// state between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
