// This is free and unencumbered software released into the public domain.
//
// Anyone is free to copy, modify, publish, use, compile, sell, or
// distribute this software, either in source code form or as a compiled
// binary, for any purpose, commercial or non-commercial, and by any
// means.
//
// In jurisdictions that recognize copyright laws, the author or authors
// of this software dedicate any and all copyright interest in the
// software to the public domain. We make this dedication for the benefit
// of the public at large and to the detriment of our heirs and
// successors. We intend this dedication to be an overt act of
// relinquishment in perpetuity of all present and future rights to this
// software under copyright law.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND,
// EXPRESS OR IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF
// MERCHANTABILITY, FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.
// IN NO EVENT SHALL THE AUTHORS BE LIABLE FOR ANY CLAIM, DAMAGES OR
// OTHER LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE,
// ARISING FROM, OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR
// OTHER DEALINGS IN THE SOFTWARE.
//
// For more information, please refer to <https://unlicense.org>

package golly

// saveStack protects nodes built mid-recursion from a concurrent GC
// pass before they are reachable from a permanent root (the result
// cache, the root pointer, or a timeline frame). Unlike a global or
// thread-local stack, it is an explicit value every recursive call
// receives; getResult and Step each mark it on entry and release it on
// exit, so nested calls cannot leak each other's entries past their own
// scope.
type saveStack struct {
	ids []nodeID
}

func newSaveStack() *saveStack { return &saveStack{} }

// mark returns a scope boundary; push everything this call's subtree
// produces, then release(mark) on return to pop it all at once.
func (s *saveStack) mark() int { return len(s.ids) }

func (s *saveStack) push(id nodeID) nodeID {
	s.ids = append(s.ids, id)
	return id
}

func (s *saveStack) release(mark int) {
	s.ids = s.ids[:mark]
}

// roots returns every node id currently protected, for the garbage
// collector's mark phase.
func (s *saveStack) roots() []nodeID {
	return s.ids
}
