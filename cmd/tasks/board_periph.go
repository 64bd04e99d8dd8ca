package main

import (
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"
)

// PinMap names the GPIO lines of the board
type PinMap struct {
	LED0 string
	LED1 string
	Key0 string
	Key1 string
	Key2 string
	WKUP string
}

// defaultPins follows a Raspberry Pi header layout
var defaultPins = PinMap{
	LED0: "GPIO5",
	LED1: "GPIO6",
	Key0: "GPIO17",
	Key1: "GPIO27",
	Key2: "GPIO22",
	WKUP: "GPIO23",
}

// gpioLED drives an active-high LED
type gpioLED struct {
	pin gpio.PinIO
}

func (l *gpioLED) Set(on bool) error {
	if on {
		return l.pin.Out(gpio.High)
	}
	return l.pin.Out(gpio.Low)
}

// gpioKeypad samples the buttons; KEY0..KEY2 pull to ground, WKUP pulls high
type gpioKeypad struct {
	keys [3]gpio.PinIO
	wkup gpio.PinIO
}

func (k *gpioKeypad) Pressed() Key {
	for i, pin := range k.keys {
		if pin.Read() == gpio.Low {
			return Key0 + Key(i)
		}
	}
	if k.wkup.Read() == gpio.High {
		return KeyWKUP
	}
	return KeyNone
}

// openGPIOBoard initializes periph.io and claims the pins in m
func openGPIOBoard(m PinMap) (*Board, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph.io host: %w", err)
	}

	lookup := func(name string) (gpio.PinIO, error) {
		p := gpioreg.ByName(name)
		if p == nil {
			return nil, fmt.Errorf("failed to open pin %s", name)
		}
		return p, nil
	}

	var leds [2]gpio.PinIO
	for i, name := range []string{m.LED0, m.LED1} {
		p, err := lookup(name)
		if err != nil {
			return nil, err
		}
		if err := p.Out(gpio.Low); err != nil {
			return nil, fmt.Errorf("failed to configure %s as output: %w", name, err)
		}
		leds[i] = p
	}

	pad := &gpioKeypad{}
	for i, name := range []string{m.Key0, m.Key1, m.Key2} {
		p, err := lookup(name)
		if err != nil {
			return nil, err
		}
		if err := p.In(gpio.PullUp, gpio.NoEdge); err != nil {
			return nil, fmt.Errorf("failed to configure %s as input: %w", name, err)
		}
		pad.keys[i] = p
	}

	wkup, err := lookup(m.WKUP)
	if err != nil {
		return nil, err
	}
	if err := wkup.In(gpio.PullDown, gpio.NoEdge); err != nil {
		return nil, fmt.Errorf("failed to configure %s as input: %w", m.WKUP, err)
	}
	pad.wkup = wkup

	return &Board{
		LED0: &gpioLED{pin: leds[0]},
		LED1: &gpioLED{pin: leds[1]},
		Keys: pad,
		closeFn: func() error {
			// Leave the LEDs dark
			for _, p := range leds {
				_ = p.Out(gpio.Low)
			}
			return nil
		},
	}, nil
}
