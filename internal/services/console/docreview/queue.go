package docreview

// QueueState distinguishes the outcomes of loading a document list.
type QueueState string

const (
	QueueStateReady QueueState = "ready"
	QueueStateEmpty QueueState = "empty"
	QueueStateError QueueState = "error"
)

// StateOf classifies a finished list fetch.
func StateOf(count int, err error) QueueState {
	switch {
	case err != nil:
		return QueueStateError
	case count == 0:
		return QueueStateEmpty
	default:
		return QueueStateReady
	}
}
