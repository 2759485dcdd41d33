package service

// Runner executes a post check-in hook. Production code fires hooks on
// their own goroutine; tests pass Sync to observe them deterministically.
type Runner func(task func())

func Async(task func()) {
	go task()
}

func Sync(task func()) {
	task()
}
