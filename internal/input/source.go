package input

import "sync"

// Source delivers control events. The channel closes when the source is
// exhausted or closed; a source asking for shutdown (keyboard 'q')
// simply closes its channel.
type Source interface {
	Events() <-chan Event
	Close() error
}

// Merge fans several sources into one channel. The merged channel closes
// once every source channel has closed.
func Merge(sources ...Source) <-chan Event {
	out := make(chan Event)

	var wg sync.WaitGroup
	wg.Add(len(sources))
	for _, src := range sources {
		go func(s Source) {
			defer wg.Done()
			for ev := range s.Events() {
				out <- ev
			}
		}(src)
	}

	go func() {
		wg.Wait()
		close(out)
	}()

	return out
}
