package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/embervm/embervm/cpu"
	"github.com/embervm/embervm/io"
)

// testMachine builds the reference test machine: 1024 bytes of memory
// with the peripheral window at 0x80000000.
func testMachine(t *testing.T, program []string) (mac *Machine) {
	t.Helper()

	mac = NewMachine(1024, 0x80000000)

	err := mac.Assemble(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}

	err = mac.Reset()
	if err != nil {
		t.Fatal(err)
	}

	return
}

func TestMachine_New(t *testing.T) {
	assert := assert.New(t)

	mac := NewMachine(1024, 0x80000000)

	assert.False(mac.Verbose)
	assert.Equal(1024, mac.Cpu.Mem.Size())
	assert.Equal(uint32(0x80000000), mac.Cpu.Mem.Base)
}

func TestMachine_Defines(t *testing.T) {
	assert := assert.New(t)

	mac := NewMachine(1024, 0x80000000)

	defines := map[string]string{}
	for name, value := range mac.Defines() {
		defines[name] = value
	}

	assert.Equal("1024", defines["MEMORY_SIZE"])
	assert.Equal("0x80000000", defines["PERIPHERAL_BASE"])
	assert.Equal("0x80000000", defines["CONSOLE_BASE"])
	assert.Equal("0x80000100", defines["TIMER_BASE"])
	assert.Equal("0x80000200", defines["BANK_BASE"])
	assert.Equal("0x4", defines["TIMER_VECTOR"])
}

func TestMachine_CompareAndBranch(t *testing.T) {
	assert := assert.New(t)

	mac := testMachine(t, []string{
		"main: mov r0 42",
		"cmpi r0 42",
		"jmp.ne 1001",
		"mov r0 -1",
		"mov r1 2",
		"cmpi r0 r1",
		"jmp.ge 1005",
	})

	status, err := mac.Run(100)
	assert.NoError(err)
	assert.Equal(cpu.STATUS_OUT_OF_INSTRUCTIONS, status)
	// Neither trap branch was taken: the counter ran off the end of the
	// stream, not to 1001 or 1005.
	assert.Equal(uint32(len(mac.Cpu.Code)), mac.Cpu.Pc)
}

func TestMachine_DataWord(t *testing.T) {
	assert := assert.New(t)

	mac := testMachine(t, []string{
		".word x 33",
		"main: ldr r0 x",
		"cmpi r0 33",
		"jmp.ne 1003",
	})

	status, err := mac.Run(100)
	assert.NoError(err)
	assert.Equal(cpu.STATUS_OUT_OF_INSTRUCTIONS, status)
	assert.Equal(uint32(len(mac.Cpu.Code)), mac.Cpu.Pc)
	assert.Equal(cpu.Word(33), mac.Cpu.Register[0])
}

func TestMachine_FloatArithmetic(t *testing.T) {
	assert := assert.New(t)

	mac := testMachine(t, []string{
		"main: mov r0 0.25",
		"mov r1 0.5",
		"addf r2 r0 r1",
		"cmpf r2 0.75",
		"jmp.ne 1010",
	})

	status, err := mac.Run(100)
	assert.NoError(err)
	assert.Equal(cpu.STATUS_OUT_OF_INSTRUCTIONS, status)
	assert.Equal(uint32(len(mac.Cpu.Code)), mac.Cpu.Pc)
	assert.Equal(float32(0.75), mac.Cpu.Register[2].Float())
}

func TestMachine_PeripheralWindow(t *testing.T) {
	assert := assert.New(t)

	mac := testMachine(t, []string{
		"main: mov r0 0xdeadbeef",
		"str r0 0xbeefdead",
		"ldr r1 0xbeefdead",
	})

	status, err := mac.Run(100)
	assert.NoError(err)
	assert.Equal(cpu.STATUS_OUT_OF_INSTRUCTIONS, status)

	// The probe saw one store, then one load, of the same word.
	assert.Equal(2, len(mac.Probe.Accesses))
	assert.Equal(io.ProbeAccess{Addr: 0xbeefdead, Value: 0xdeadbeef, Store: true},
		mac.Probe.Accesses[0])
	assert.Equal(io.ProbeAccess{Addr: 0xbeefdead, Value: 0xdeadbeef},
		mac.Probe.Accesses[1])
	assert.Equal(cpu.Word(0xdeadbeef), mac.Cpu.Register[1])
}

func TestMachine_IsrRedirection(t *testing.T) {
	assert := assert.New(t)

	mac := testMachine(t, []string{
		".isr isr_entry my_handler",
		"main: nop",
		"nop",
		"jmp 9999",
		"isr_entry: jmp isr_stub",
		"isr_stub: ret",
		"my_handler: mov r0 0x12345678",
		"ret",
	})

	entry, ok := mac.Entry("isr_entry")
	assert.True(ok)
	assert.True(mac.Cpu.Interrupt(entry))

	status, err := mac.Run(100)
	assert.NoError(err)
	assert.Equal(cpu.STATUS_OUT_OF_INSTRUCTIONS, status)

	// The redirected handler ran, and the main stream's return address
	// was restored for its ret.
	assert.Equal(cpu.Word(0x12345678), mac.Cpu.Register[0])
	assert.Equal(cpu.Word(0), mac.Cpu.Register[cpu.REG_SP])
}

func TestMachine_DivisionByZero(t *testing.T) {
	assert := assert.New(t)

	mac := testMachine(t, []string{
		"main: mov r0 5",
		"mov r1 0",
		"div r2 r0 r1",
	})

	status, err := mac.Run(100)
	assert.Equal(cpu.STATUS_DIVISION_BY_ZERO, status)

	var rerr *ErrRuntime
	if assert.True(errors.As(err, &rerr)) {
		assert.Equal(cpu.STATUS_DIVISION_BY_ZERO, rerr.Status)
		assert.Equal(3, rerr.LineNo)
	}
}

func TestMachine_ConsoleEcho(t *testing.T) {
	assert := assert.New(t)

	mac := testMachine(t, []string{
		"main: ldr r0 $(CONSOLE_BASE + CONSOLE_RX)",
		"str r0 $(CONSOLE_BASE + CONSOLE_TX)",
		"ldr r1 $(CONSOLE_BASE + CONSOLE_STATUS)",
	})

	output := &bytes.Buffer{}
	mac.Console.Input = strings.NewReader("A")
	mac.Console.Output = output

	status, err := mac.Run(100)
	assert.NoError(err)
	assert.Equal(cpu.STATUS_OUT_OF_INSTRUCTIONS, status)
	assert.Equal("A", output.String())
	assert.Equal(cpu.Word(0), mac.Cpu.Register[1])
}

func TestMachine_TimerInterrupt(t *testing.T) {
	assert := assert.New(t)

	mac := testMachine(t, []string{
		"handler: mov r5 99",
		"ret",
		"main: mov r1 handler",
		"mov r2 $(TIMER_BASE)",
		"str r1 r2 $(TIMER_VECTOR)",
		"mov r3 5",
		"str r3 r2 $(TIMER_COUNT)",
		"mov r4 1",
		"str r4 r2 $(TIMER_CTRL)",
		"jmp 9999",
	})

	status, err := mac.Run(8)
	assert.NoError(err)
	assert.Equal(cpu.STATUS_SUCCESS, status)

	assert.True(mac.Timer.Tick(5))
	assert.False(mac.Cpu.Pending.Empty())

	status, err = mac.Run(100)
	assert.NoError(err)
	assert.Equal(cpu.STATUS_OUT_OF_INSTRUCTIONS, status)
	assert.Equal(cpu.Word(99), mac.Cpu.Register[5])
	assert.Zero(mac.Timer.Ctrl & io.TIMER_CTRL_ENABLE)
}

func TestMachine_SegfaultLineNumber(t *testing.T) {
	assert := assert.New(t)

	mac := testMachine(t, []string{
		"main: nop",
		"str r0 2000",
	})

	status, err := mac.Run(100)
	assert.Equal(cpu.STATUS_SEGFAULT, status)

	var rerr *ErrRuntime
	if assert.True(errors.As(err, &rerr)) {
		assert.Equal(2, rerr.LineNo)
	}
}

func TestMachine_AssembleErrors(t *testing.T) {
	assert := assert.New(t)

	mac := NewMachine(1024, 0x80000000)
	err := mac.Assemble(strings.NewReader("main: zed r0"))
	assert.Error(err)
	assert.Nil(mac.Program)
}

func TestMachine_ResetReloads(t *testing.T) {
	assert := assert.New(t)

	mac := testMachine(t, []string{
		"main: mov r0 7",
	})

	status, err := mac.Run(100)
	assert.NoError(err)
	assert.Equal(cpu.STATUS_OUT_OF_INSTRUCTIONS, status)
	assert.Equal(cpu.Word(7), mac.Cpu.Register[0])

	err = mac.Reset()
	assert.NoError(err)
	assert.Equal(cpu.Word(0), mac.Cpu.Register[0])

	status, err = mac.Run(100)
	assert.NoError(err)
	assert.Equal(cpu.STATUS_OUT_OF_INSTRUCTIONS, status)
	assert.Equal(cpu.Word(7), mac.Cpu.Register[0])
}
