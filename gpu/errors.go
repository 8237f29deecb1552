package gpu

import "log"

// Error flag values reported by Device.Error. They match the GL enums.
const (
	NoError                     uint32 = 0
	InvalidEnum                 uint32 = 0x0500
	InvalidValue                uint32 = 0x0501
	InvalidOperation            uint32 = 0x0502
	StackOverflow               uint32 = 0x0503
	StackUnderflow              uint32 = 0x0504
	OutOfMemory                 uint32 = 0x0505
	InvalidFramebufferOperation uint32 = 0x0506
)

// ErrorString names a GL error flag.
func ErrorString(code uint32) string {
	switch code {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case StackOverflow:
		return "GL_STACK_OVERFLOW"
	case StackUnderflow:
		return "GL_STACK_UNDERFLOW"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	default:
		return "UNRECOGNIZED"
	}
}

// CheckError reads the device error flag and logs it under label when it is
// set, or unconditionally when always is true. It only reports; callers keep
// running whatever the flag says. The flag read is returned.
func CheckError(d Device, label string, always bool) uint32 {
	code := d.Error()
	if always || code != NoError {
		if label == "" {
			label = "Unlabelled Error Checkpoint"
		}
		log.Printf("%s: OpenGL error flag is %s", label, ErrorString(code))
	}
	return code
}
