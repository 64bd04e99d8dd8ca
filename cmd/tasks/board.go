package main

import (
	"bufio"
	"io"
	"strings"
	"sync/atomic"
	"time"
)

// Key identifies a board button
type Key int

const (
	KeyNone Key = iota
	Key0
	Key1
	Key2
	KeyWKUP
)

func (k Key) String() string {
	switch k {
	case Key0:
		return "KEY0"
	case Key1:
		return "KEY1"
	case Key2:
		return "KEY2"
	case KeyWKUP:
		return "WKUP"
	default:
		return "NONE"
	}
}

// LED is a single on/off indicator
type LED interface {
	Set(on bool) error
}

// Keypad reports the key currently held down, KeyNone when idle
type Keypad interface {
	Pressed() Key
}

// Board groups the peripherals the tasks drive
type Board struct {
	LED0 LED
	LED1 LED
	Keys Keypad

	closeFn func() error
}

// Close releases the peripherals
func (b *Board) Close() error {
	if b.closeFn == nil {
		return nil
	}
	return b.closeFn()
}

// memLED keeps its state in memory, used when no GPIO is available
type memLED struct {
	on atomic.Bool
}

func (l *memLED) Set(on bool) error {
	l.on.Store(on)
	return nil
}

func (l *memLED) On() bool {
	return l.on.Load()
}

// consoleKeypad turns characters read from r into short key presses: w=WKUP, 0, 1, 2
type consoleKeypad struct {
	held atomic.Int64
	hold time.Duration
}

var consoleKeys = map[rune]Key{
	'w': KeyWKUP,
	'W': KeyWKUP,
	'0': Key0,
	'1': Key1,
	'2': Key2,
}

func newConsoleKeypad(r io.Reader, hold time.Duration) *consoleKeypad {
	k := &consoleKeypad{hold: hold}
	go k.read(r)
	return k
}

func (k *consoleKeypad) read(r io.Reader) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		for _, c := range strings.TrimSpace(scanner.Text()) {
			key, ok := consoleKeys[c]
			if !ok {
				continue
			}
			// Hold long enough for the scanner to sample it, then release
			k.held.Store(int64(key))
			time.Sleep(k.hold)
			k.held.Store(int64(KeyNone))
			time.Sleep(k.hold)
		}
	}
}

func (k *consoleKeypad) Pressed() Key {
	return Key(k.held.Load())
}

// newSimulatedBoard wires in-memory LEDs and a console keypad
func newSimulatedBoard(in io.Reader) *Board {
	return &Board{
		LED0: &memLED{},
		LED1: &memLED{},
		Keys: newConsoleKeypad(in, 50*time.Millisecond),
	}
}
