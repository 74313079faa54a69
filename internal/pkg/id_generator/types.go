package id_generator

//go:generate mockgen -source=./types.go -package=idgenmocks -destination=./mocks/id_generator.mock.go IDGenerator
type IDGenerator interface {
	// Generate 生成下一个ID
	Generate() (uint64, error)
	// Decompose 按照实现自己的位布局拆解ID
	Decompose(id uint64) Parts
	NodeID() int64
}
