package xwalk

import "context"

// ProcessDirectory 直接处理单个目录，用于构造遍历中难以复现的竞态。
func (w *Walker) ProcessDirectory(ctx context.Context, dir string) (Result, error) {
	s := &walkState{Walker: w, ctx: ctx}
	err := s.processDirectory(dir)
	return s.result, err
}
