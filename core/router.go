package core

// ScreenStack holds the overlays above the active page. The last element is
// the one receiving keys.
type ScreenStack []Screen

func (s *ScreenStack) Push(screen Screen) {
	if screen != nil {
		*s = append(*s, screen)
	}
}

// Pop removes and returns the top screen, or nil when the stack is empty.
func (s *ScreenStack) Pop() Screen {
	n := len(*s)
	if n == 0 {
		return nil
	}
	top := (*s)[n-1]
	(*s)[n-1] = nil
	*s = (*s)[:n-1]
	return top
}

// ReplaceTop swaps the top screen for next, keeping the depth.
func (s ScreenStack) ReplaceTop(next Screen) {
	if n := len(s); n > 0 && next != nil {
		s[n-1] = next
	}
}

func (s ScreenStack) Top() Screen {
	if n := len(s); n > 0 {
		return s[n-1]
	}
	return nil
}

func (s ScreenStack) Len() int { return len(s) }
