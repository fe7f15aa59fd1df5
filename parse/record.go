package parse

// AllocationRecorder tracks every tree and stack node allocated while
// it is active, so tests can assert that a sequence of stack
// operations released exactly what it retained.
type AllocationRecorder struct {
	nextIndex   int
	outstanding map[any]int
}

var recorder *AllocationRecorder

// StartRecordingAllocations installs a fresh process-wide recorder
// and returns it. Only one recorder is active at a time.
func StartRecordingAllocations() *AllocationRecorder {
	recorder = &AllocationRecorder{outstanding: make(map[any]int)}
	return recorder
}

// StopRecordingAllocations uninstalls the active recorder.
func StopRecordingAllocations() {
	recorder = nil
}

// Outstanding returns how many recorded allocations have not been
// freed yet.
func (r *AllocationRecorder) Outstanding() int {
	return len(r.outstanding)
}

// OutstandingIndices returns the allocation indices that have not
// been freed, in ascending order.
func (r *AllocationRecorder) OutstandingIndices() []int {
	indices := make([]int, 0, len(r.outstanding))
	for _, i := range r.outstanding {
		indices = append(indices, i)
	}
	for i := 1; i < len(indices); i++ {
		for j := i; j > 0 && indices[j] < indices[j-1]; j-- {
			indices[j], indices[j-1] = indices[j-1], indices[j]
		}
	}
	return indices
}

// RecordAlloc notes a newly allocated ref-counted object. Packages
// owning such objects call it at construction time.
func RecordAlloc(obj any) {
	recordAlloc(obj)
}

// RecordFree notes that a ref-counted object dropped its last
// reference.
func RecordFree(obj any) {
	recordFree(obj)
}

func recordAlloc(obj any) {
	if recorder == nil {
		return
	}
	recorder.outstanding[obj] = recorder.nextIndex
	recorder.nextIndex++
}

func recordFree(obj any) {
	if recorder == nil {
		return
	}
	delete(recorder.outstanding, obj)
}
