package bootstrap_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/cytraco/cytraco/internal/bootstrap"
	"github.com/cytraco/cytraco/internal/config"
	cytest "github.com/cytraco/cytraco/internal/testing"
)

var _ = Describe("Bootstrap Orchestrator", func() {
	var (
		ctx      context.Context
		cancel   context.CancelFunc
		store    *cytest.MemoryStore
		dir      *cytest.FakeDirectory
		prompter *cytest.ScriptedPrompter
	)

	BeforeEach(func() {
		ctx, cancel = context.WithCancel(context.Background())
		store = cytest.NewMemoryStore()
		dir = cytest.NewFakeDirectory()
		prompter = cytest.NewScriptedPrompter()
	})

	AfterEach(func() {
		cancel()
	})

	run := func() bootstrap.Outcome {
		outcome, err := bootstrap.New(store, dir, prompter).Run(ctx)
		Expect(err).NotTo(HaveOccurred())
		return outcome
	}

	Context("without a configuration file", func() {
		It("creates the file after pairing the only trainer", func() {
			By("answering 250 and continuing with Trainer X")
			dir.WithScan(cytest.TrainerX())
			prompter.Threshold(250).Choose(bootstrap.ChoiceContinue)

			outcome := run()

			Expect(outcome.Completed()).To(BeTrue())
			Expect(outcome.DemoMode).To(BeFalse())
			Expect(store.Saves()).To(ConsistOf(config.Config{
				ThresholdPower: 250,
				DeviceAddress:  "AA:BB:CC:DD:EE:FF",
			}))
		})

		It("creates nothing when the rider exits at the threshold prompt", func() {
			prompter.Choose(bootstrap.ChoiceExit)

			outcome := run()

			Expect(outcome.Cancelled()).To(BeTrue())
			Expect(outcome.Interrupted).To(BeFalse())
			_, ok := store.Stored()
			Expect(ok).To(BeFalse())
			Expect(dir.ScanCalls()).To(BeZero())
		})

		It("never offers demo before a threshold is known", func() {
			prompter.Choose(bootstrap.ChoiceDemo)

			_, err := bootstrap.New(store, dir, prompter).Run(ctx)

			var bErr *bootstrap.Error
			Expect(errors.As(err, &bErr)).To(BeTrue())
			Expect(bErr.Kind).To(Equal(bootstrap.KindPrompt))
			Expect(store.Saves()).To(BeEmpty())
		})
	})

	Context("with a paired trainer that is out of range", func() {
		BeforeEach(func() {
			store.With(config.Config{ThresholdPower: 200, DeviceAddress: "11:22:33:44:55:66"})
			dir.WithReachable(false)
		})

		It("falls back to demo mode and forgets the trainer", func() {
			prompter.Choose(bootstrap.ChoiceDemo)

			outcome := run()

			Expect(outcome.DemoMode).To(BeTrue())
			Expect(store.Saves()).To(Equal([]config.Config{{ThresholdPower: 200}}))
		})

		It("keeps retrying until the rider gives up", func() {
			prompter.
				Choose(bootstrap.ChoiceRetry).
				Choose(bootstrap.ChoiceRetry).
				Choose(bootstrap.ChoiceExit)

			outcome := run()

			Expect(outcome.Cancelled()).To(BeTrue())
			Expect(dir.ReachableCalls()).To(HaveLen(3))
			Expect(store.Saves()).To(BeEmpty())
		})

		It("cancels without writing when interrupted", func() {
			prompter.Fail(bootstrap.ErrInterrupted)

			outcome := run()

			Expect(outcome.Interrupted).To(BeTrue())
			Expect(store.Saves()).To(BeEmpty())
		})
	})

	Context("with only a threshold configured", func() {
		BeforeEach(func() {
			store.With(config.Config{ThresholdPower: 220})
		})

		It("pairs the selected trainer and keeps the threshold", func() {
			devices := cytest.Devices(3)
			dir.WithScan(devices...)
			prompter.SelectDevice(2)

			outcome := run()

			Expect(outcome.Config).To(Equal(config.Config{
				ThresholdPower: 220,
				DeviceAddress:  devices[2].Address,
			}))
			Expect(store.Saves()).To(HaveLen(1))
		})

		It("rescans after an empty result", func() {
			dir.WithScan().WithScan().WithScan(cytest.TrainerX())
			prompter.
				Choose(bootstrap.ChoiceRetry).
				Choose(bootstrap.ChoiceRetry).
				Choose(bootstrap.ChoiceContinue)

			outcome := run()

			Expect(outcome.Config.DeviceAddress).To(Equal(cytest.TrainerX().Address))
			Expect(dir.ScanCalls()).To(Equal(3))
			Expect(prompter.Shown()).To(Equal([]string{
				cytest.PromptNoDevices,
				cytest.PromptNoDevices,
				cytest.PromptSingleDevice,
			}))
		})
	})

	Context("forced demo mode", func() {
		It("leaves a stored pairing alone", func() {
			stored := config.Config{ThresholdPower: 260, DeviceAddress: "11:22:33:44:55:66"}
			store.With(stored)

			outcome, err := bootstrap.New(store, dir, prompter).RunDemo(ctx)

			Expect(err).NotTo(HaveOccurred())
			Expect(outcome.DemoMode).To(BeTrue())
			Expect(store.Saves()).To(ConsistOf(stored))
			Expect(dir.ScanCalls()).To(BeZero())
			Expect(dir.ReachableCalls()).To(BeEmpty())
		})
	})
})
