package shopkit_test

import (
	"testing"

	"github.com/centraunit/shopkit"
	"github.com/centraunit/shopkit/mock"
	"github.com/centraunit/shopkit/shop"
)

func BenchmarkRegistry(b *testing.B) {
	b.Run("Register", func(b *testing.B) {
		reg := shopkit.NewRegistry(nil)
		greeter := &mock.FrenchGreeter{}
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_ = shopkit.Register[mock.Greeter](reg, greeter)
		}
	})

	b.Run("Resolve", func(b *testing.B) {
		reg := shopkit.NewRegistry(nil)
		_ = shopkit.Register[mock.Greeter](reg, &mock.FrenchGreeter{})
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			_, _ = shopkit.Resolve[mock.Greeter](reg)
		}
	})

	b.Run("ParallelTryResolve", func(b *testing.B) {
		reg := shopkit.NewRegistry(nil)
		_ = shopkit.Register[mock.Greeter](reg, &mock.FrenchGreeter{})
		b.ResetTimer()
		b.RunParallel(func(pb *testing.PB) {
			for pb.Next() {
				_, _ = shopkit.TryResolve[mock.Greeter](reg)
			}
		})
	})
}

func BenchmarkInject(b *testing.B) {
	reg := mock.Registry(&mock.Input{}, &mock.Wallet{}, &mock.Clock{})
	_ = shopkit.Register[shop.Stock](reg, shop.NewShelfStock())
	char := shop.NewCharacter("bench", 1, 1, nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		shopkit.Inject(reg, char)
	}
}
