package core_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/rtlsim/core"
	"github.com/sarchlab/rtlsim/internal/bitvec"
	"github.com/sarchlab/rtlsim/internal/fixtures"
	"github.com/sarchlab/rtlsim/internal/model"
	"github.com/sarchlab/rtlsim/internal/rtlerr"
)

var _ = Describe("SimulationTool", func() {
	It("pipes a single register straight through (S1)", func() {
		in := model.SignalID(0)
		out := model.SignalID(1)

		m := &model.Model{
			Name:       "single_register",
			Elaborated: true,
			SignalList: []model.Signal{
				{ID: in, Name: "in_", NBits: 16, Direction: model.DirectionInput},
				{ID: out, Name: "out", NBits: 16, Direction: model.DirectionOutput},
			},
			SeqBlocks: []model.SeqBlockSpec{
				{Name: "r", Behavior: &model.Behavior{Op: "passthrough"}, ReadSet: []model.SignalID{in}, Destinations: []model.SignalID{out}},
			},
		}

		t, err := core.NewBuilder().WithModel(m).Build()
		Expect(err).NotTo(HaveOccurred())

		Expect(t.ReadSignal(out).Uint64()).To(Equal(uint64(0)))

		Expect(t.WriteSignal(in, bitvec.FromUint64(16, 8))).To(Succeed())
		Expect(t.ReadSignal(out).Uint64()).To(Equal(uint64(0)))

		Expect(t.Cycle()).To(Succeed())
		Expect(t.ReadSignal(out).Uint64()).To(Equal(uint64(8)))

		Expect(t.WriteSignal(in, bitvec.FromUint64(16, 9))).To(Succeed())
		Expect(t.ReadSignal(out).Uint64()).To(Equal(uint64(8)))

		Expect(t.WriteSignal(in, bitvec.FromUint64(16, 10))).To(Succeed())
		Expect(t.Cycle()).To(Succeed())
		Expect(t.ReadSignal(out).Uint64()).To(Equal(uint64(10)))
	})

	It("propagates through a three-stage register chain (S2)", func() {
		m, err := fixtures.Load("../internal/fixtures/_fixtures/reg_chain.yaml")
		Expect(err).NotTo(HaveOccurred())

		t, err := core.NewBuilder().WithModel(m).Build()
		Expect(err).NotTo(HaveOccurred())

		in, ok := t.SignalByName("in_")
		Expect(ok).To(BeTrue())
		out, ok := t.SignalByName("out")
		Expect(ok).To(BeTrue())
		r0Out, ok := t.SignalByName("r0_out")
		Expect(ok).To(BeTrue())

		var outs, r0Outs []uint64
		sample := func() {
			outs = append(outs, t.ReadSignal(out).Uint64())
			r0Outs = append(r0Outs, t.ReadSignal(r0Out).Uint64())
		}

		Expect(t.Reset()).To(Succeed())
		sample()

		Expect(t.WriteSignal(in, bitvec.FromUint64(16, 8))).To(Succeed())
		Expect(t.Cycle()).To(Succeed())
		sample()

		Expect(t.WriteSignal(in, bitvec.FromUint64(16, 10))).To(Succeed())
		Expect(t.Cycle()).To(Succeed())
		sample()

		Expect(t.Cycle()).To(Succeed())
		sample()

		Expect(t.Cycle()).To(Succeed())
		sample()

		Expect(outs).To(Equal([]uint64{0, 0, 0, 8, 10}))
		Expect(r0Outs).To(Equal([]uint64{0, 8, 10, 10, 10}))
	})

	It("resets a registered mux to zero (S3)", func() {
		in := model.SignalID(0)
		reset := model.SignalID(1)
		out := model.SignalID(2)

		m := &model.Model{
			Name:       "registered_reset",
			Elaborated: true,
			SignalList: []model.Signal{
				{ID: in, Name: "in_", NBits: 16, Direction: model.DirectionInput},
				{ID: reset, Name: "reset", NBits: 1, Direction: model.DirectionWire},
				{ID: out, Name: "out", NBits: 16, Direction: model.DirectionOutput},
			},
			SeqBlocks: []model.SeqBlockSpec{
				{
					Name:         "r",
					Behavior:     &model.Behavior{Op: "mux_reset"},
					ReadSet:      []model.SignalID{reset, in},
					Destinations: []model.SignalID{out},
				},
			},
			ResetSignal: reset,
		}

		t, err := core.NewBuilder().WithModel(m).Build()
		Expect(err).NotTo(HaveOccurred())

		Expect(t.WriteSignal(in, bitvec.FromUint64(16, 8))).To(Succeed())
		Expect(t.Reset()).To(Succeed())
		Expect(t.Cycle()).To(Succeed())
		Expect(t.ReadSignal(out).Uint64()).To(Equal(uint64(8)))

		Expect(t.WriteSignal(in, bitvec.FromUint64(16, 10))).To(Succeed())
		Expect(t.Cycle()).To(Succeed())
		Expect(t.ReadSignal(out).Uint64()).To(Equal(uint64(10)))

		Expect(t.Reset()).To(Succeed())
		Expect(t.ReadSignal(out).Uint64()).To(Equal(uint64(0)))
	})

	It("blasts a register's bits across four slice outputs (S4)", func() {
		m, err := fixtures.Load("../internal/fixtures/_fixtures/bit_blast.yaml")
		Expect(err).NotTo(HaveOccurred())

		t, err := core.NewBuilder().WithModel(m).Build()
		Expect(err).NotTo(HaveOccurred())

		in, _ := t.SignalByName("in_")
		out0, _ := t.SignalByName("out0")
		out1, _ := t.SignalByName("out1")
		out2, _ := t.SignalByName("out2")
		out3, _ := t.SignalByName("out3")

		Expect(t.WriteSignal(in, bitvec.FromUint64(8, 0b11110000))).To(Succeed())
		Expect(t.ReadSignal(out0).Uint64()).To(Equal(uint64(0)))
		Expect(t.ReadSignal(out1).Uint64()).To(Equal(uint64(0)))
		Expect(t.ReadSignal(out2).Uint64()).To(Equal(uint64(0)))
		Expect(t.ReadSignal(out3).Uint64()).To(Equal(uint64(0)))

		Expect(t.Cycle()).To(Succeed())
		Expect(t.ReadSignal(out0).Uint64()).To(Equal(uint64(0b00)))
		Expect(t.ReadSignal(out1).Uint64()).To(Equal(uint64(0b00)))
		Expect(t.ReadSignal(out2).Uint64()).To(Equal(uint64(0b11)))
		Expect(t.ReadSignal(out3).Uint64()).To(Equal(uint64(0b11)))
	})

	It("reports a combinational loop instead of hanging (S5)", func() {
		z := model.SignalID(0)

		m := &model.Model{
			Name:       "oscillator",
			Elaborated: true,
			SignalList: []model.Signal{
				{ID: z, Name: "z", NBits: 1, Direction: model.DirectionWire},
			},
			CombBlocks: []model.CombBlockSpec{
				{Name: "inv", Behavior: &model.Behavior{Op: "invert"}, ReadSet: []model.SignalID{z}, WriteSet: []model.SignalID{z}},
			},
		}

		t, err := core.NewBuilder().WithModel(m).Build()
		Expect(err).NotTo(HaveOccurred())

		err = t.Cycle()
		Expect(err).To(HaveOccurred())

		var loopErr *rtlerr.CombinationalLoopError
		Expect(err).To(BeAssignableToTypeOf(loopErr))
	})

	It("writes through a bidirectional slice alias in both directions (S6)", func() {
		w := model.SignalID(0)
		u := model.SignalID(1)

		m := &model.Model{
			Name:       "slice_bridge",
			Elaborated: true,
			SignalList: []model.Signal{
				{ID: w, Name: "w", NBits: 16, Direction: model.DirectionWire},
				{ID: u, Name: "u", NBits: 8, Direction: model.DirectionWire},
			},
			SliceConns: []model.SliceConnection{
				{Dest: u, DestRange: [2]int{0, 8}, Src: w, SrcRange: [2]int{8, 16}},
			},
		}

		t, err := core.NewBuilder().WithModel(m).Build()
		Expect(err).NotTo(HaveOccurred())

		Expect(t.WriteSignal(w, bitvec.FromUint64(16, 0xAB00))).To(Succeed())
		Expect(t.EvalCombinational(rtlerr.PhasePreSettle)).To(Succeed())
		Expect(t.ReadSignal(u).Uint64()).To(Equal(uint64(0xAB)))

		Expect(t.WriteSignal(u, bitvec.FromUint64(8, 0x5C))).To(Succeed())
		Expect(t.EvalCombinational(rtlerr.PhasePreSettle)).To(Succeed())
		Expect(t.ReadSignal(w).Slice(8, 16).Uint64()).To(Equal(uint64(0x5C)))
		Expect(t.ReadSignal(w).Slice(0, 8).Uint64()).To(Equal(uint64(0x00)))
	})

	It("returns a registered block's write failure instead of panicking", func() {
		z := model.SignalID(0)

		m := &model.Model{
			Name:       "misbehaving",
			Elaborated: true,
			SignalList: []model.Signal{
				{ID: z, Name: "z", NBits: 1, Direction: model.DirectionWire},
			},
			CombBlocks: []model.CombBlockSpec{
				{
					Name: "bad",
					Run: func() error {
						return &rtlerr.WidthError{Signal: "z", Want: 1, Got: 4}
					},
					ReadSet:  []model.SignalID{z},
					WriteSet: []model.SignalID{z},
				},
			},
		}

		t, err := core.NewBuilder().WithModel(m).Build()
		Expect(err).NotTo(HaveOccurred())

		err = t.Cycle()
		Expect(err).To(HaveOccurred())

		var cycleErr *rtlerr.CycleError
		Expect(err).To(BeAssignableToTypeOf(cycleErr))

		var widthErr *rtlerr.WidthError
		Expect(errors.As(err, &widthErr)).To(BeTrue())
	})
})
