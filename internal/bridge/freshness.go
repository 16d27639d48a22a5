package bridge

// Side identifies which storage tier a payload came from.
type Side string

const (
	SideLocal  Side = "local"
	SideRemote Side = "remote"
)

// Fresher picks the side whose payload timestamp wins. Remote wins ties,
// so two devices that never diverged keep converging on the shared copy.
func Fresher(localAt, remoteAt int64) Side {
	if localAt > remoteAt {
		return SideLocal
	}
	return SideRemote
}
