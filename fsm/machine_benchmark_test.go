package fsm_test

import (
	"testing"

	"github.com/centraunit/shopkit/fsm"
)

func BenchmarkMachine(b *testing.B) {
	b.Run("Update", func(b *testing.B) {
		m := fsm.NewMachine("bench", &journal{}, nil)
		m.AddState(quietState{})
		m.ChangeState("quiet")
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			m.Update()
		}
	})

	b.Run("ChangeState", func(b *testing.B) {
		m := fsm.NewMachine("bench", &journal{}, nil)
		m.AddState(quietState{})
		b.ResetTimer()
		for i := 0; i < b.N; i++ {
			m.ChangeState("quiet")
		}
	})
}
