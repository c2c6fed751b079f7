package config_test

import (
	"context"
	"os"
	"testing"

	"helios-node/modules/config"
)

func TestBasic(t *testing.T) {
	t.Cleanup(func() { os.RemoveAll(config.DATA_DIR) })

	type conf struct {
		A uint
		B string
	}
	c := config.New(conf{1, "hi"})
	err := c.Init()
	if err != nil {
		t.Fatal(err)
	}
	_, err = c.Start().Await(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if c.Get().B != "hi" {
		t.Fatal("default value not applied")
	}
	err = c.Stop()
	if err != nil {
		t.Fatal(err)
	}
}
